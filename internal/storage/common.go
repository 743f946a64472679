package storage

import "fmt"

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// TableFull - Custom error to inform that every slot is occupied and the table can't take more records
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// NewProbingAlgorithm - Returns a ProbingAlgorithm error describing an index outside the table
func NewProbingAlgorithm(index, tableSize int) ProbingAlgorithm {
	return ProbingAlgorithm{msg: fmt.Sprintf("probing algorithm returned index %d outside table of size %d", index, tableSize)}
}

// Error - Used to notify that the probing algorithm misbehaved
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// Is - Makes errors.Is match any ProbingAlgorithm regardless of message
func (P ProbingAlgorithm) Is(target error) bool {
	_, ok := target.(ProbingAlgorithm)
	return ok
}

// ClusterRepair - Custom error to inform that a record was deleted but the probe cluster after it could not be repaired
type ClusterRepair struct {
	msg string
}

// NewClusterRepair - Returns a ClusterRepair error for the slot whose record could not be re-seated
func NewClusterRepair(slot int, cause error) ClusterRepair {
	return ClusterRepair{msg: fmt.Sprintf("record in slot %d could not be re-seated: %v", slot, cause)}
}

// Error - Used to notify that the cluster repair stopped early
func (C ClusterRepair) Error() string {
	if C.msg == "" {
		return "cluster repair failed"
	}
	return C.msg
}

// Is - Makes errors.Is match any ClusterRepair regardless of message
func (C ClusterRepair) Is(target error) bool {
	_, ok := target.(ClusterRepair)
	return ok
}
