package mcdc

import (
	"gopkg.in/check.v1"
)

func (s *Suite) Test_registerFile_acquire__reuse(c *check.C) {
	var rf registerFile

	c.Check(rf.acquire(), check.Equals, 0)
	rf.release(0)
	c.Check(rf.acquire(), check.Equals, 0)
	c.Check(rf.size(), check.Equals, 1)
}

func (s *Suite) Test_registerFile_acquire__append(c *check.C) {
	var rf registerFile

	c.Check(rf.acquire(), check.Equals, 0)
	c.Check(rf.acquire(), check.Equals, 1)
	c.Check(rf.size(), check.Equals, 2)

	c.Check(rf.acquire(), check.Equals, 2)
	c.Check(rf.size(), check.Equals, 3)
}

// The lowest free register is reused, not the most recently released one.
func (s *Suite) Test_registerFile_acquire__first_fit(c *check.C) {
	var rf registerFile
	for i := 0; i < 4; i++ {
		rf.acquire()
	}

	rf.release(3)
	rf.release(1)
	rf.release(2)

	c.Check(rf.acquire(), check.Equals, 1)
	c.Check(rf.acquire(), check.Equals, 2)
	c.Check(rf.acquire(), check.Equals, 3)
	c.Check(rf.acquire(), check.Equals, 4)
}

func (s *Suite) Test_registerFile_release__out_of_range(c *check.C) {
	var rf registerFile
	rf.acquire()

	rf.release(1)
	rf.release(-1)
	rf.release(NoNode)

	c.Check(rf.size(), check.Equals, 1)
	c.Check(rf.stray, check.Equals, 3)
	c.Check(rf.acquire(), check.Equals, 1)
}
