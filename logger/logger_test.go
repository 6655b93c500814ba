// This file is part of GopherPC.
//
// GopherPC is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherPC is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherPC.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopherpc/logger"
	"github.com/jetsetilly/gopherpc/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.Len(), 0)

	logger.Log("test", "first message")
	logger.Write(s)
	test.Equate(t, s.String(), "test: first message\n")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	logger.Log("test", "same message")
	logger.Log("test", "same message")
	logger.Log("test", "same message")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: same message (repeat x3)\n")
}

func TestTail(t *testing.T) {
	logger.Clear()

	logger.Log("test", "message A")
	logger.Log("test", "message B")
	logger.Log("test", "message C")

	s := &strings.Builder{}
	logger.Tail(s, 2)
	test.Equate(t, s.String(), "test: message B\ntest: message C\n")
}

func TestMultiline(t *testing.T) {
	logger.Clear()

	logger.Log("test", "line one\nline two")

	s := &strings.Builder{}
	logger.Write(s)
	test.Equate(t, s.String(), "test: line one\ntest: line two\n")
}
