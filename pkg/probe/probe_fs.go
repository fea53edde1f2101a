package probe

import (
	"os"
)

type filesystemProbe struct {
	path string
}

func (f *filesystemProbe) Check() Result {
	if _, err := os.ReadDir(f.path); err != nil {
		return Error(err)
	}
	return Healthy()
}
