package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/testdmg/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectEquality(t, uint8(0xff), 0xff)
}

func TestExpectInequality(t *testing.T) {
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectInequality(t, true, false)
}

func TestExpectApproximate(t *testing.T) {
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectApproximate(t, 59.7, 60.0, 0.01)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	tw.Write([]byte("hello "))
	tw.Write([]byte("world"))
	test.ExpectSuccess(t, tw.Compare("hello world"))
	tw.Clear()
	test.ExpectEquality(t, tw.String(), "")
}
