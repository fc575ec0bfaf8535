// This file is part of bfjit.
//
// Copyright 2026 The bfjit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package jit

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// allocExec maps an anonymous, private region large enough to hold code,
// copies code into it, then drops write permission in favor of exec — two
// separate mmap/mprotect calls so the region is never simultaneously
// writable and executable.
func allocExec(code []byte) ([]byte, error) {
	if len(code) == 0 {
		return nil, errors.New("jit: empty code")
	}
	mem, err := unix.Mmap(-1, 0, len(code), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, errors.Wrap(err, "mmap")
	}
	copy(mem, code)
	if err := unix.Mprotect(mem, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		_ = unix.Munmap(mem)
		return nil, errors.Wrap(err, "mprotect")
	}
	return mem, nil
}

// freeExec releases a region obtained from allocExec.
func freeExec(mem []byte) error {
	if mem == nil {
		return nil
	}
	return errors.Wrap(unix.Munmap(mem), "munmap")
}
