// Package inmemdb provides the process-local roster store. The dashboard is
// transient by design: nothing survives a restart.
package inmemdb

import (
	"sync"

	"github.com/edulab/markboard/core/student"
)

type (
	DB struct {
		student *studentTable
	}

	studentTable struct {
		sync.RWMutex
		table map[int]*student.Student
	}
)

func Open() (*DB, error) {
	db := &DB{
		student: &studentTable{table: make(map[int]*student.Student)},
	}
	return db, nil
}
