// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions record a test failure but allow the test to
// continue. The Demand*() functions are the same except that the failure is
// fatal to the test.
//
// The ExpectSuccess and ExpectFailure functions test for success and failure
// under generic conditions. The nil type is considered a success because of
// how errors usually work (nil to indicate no error).
//
// The tags argument to all functions is used to identify a test when it is
// run in a loop. For example, a loop counter or the name of a test case.
//
// The CompareWriter type implements the io.Writer interface and should be used
// to capture output. The CompareWriter.Compare() function can then be used to
// test for equality.
package test
