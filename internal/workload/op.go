package workload

import "github.com/dshills/logarray/internal/config"

// Op is a kind of operation the runner can issue.
type Op int

const (
	OpInsert Op = iota
	OpRemove
	OpDelete
	OpGet
	OpSet
	OpPush
	OpPop
	OpShift
	OpUnshift
)

var opNames = [...]string{
	OpInsert:  "insert",
	OpRemove:  "remove",
	OpDelete:  "delete",
	OpGet:     "get",
	OpSet:     "set",
	OpPush:    "push",
	OpPop:     "pop",
	OpShift:   "shift",
	OpUnshift: "unshift",
}

// String returns the operation name.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}
	return opNames[o]
}

// Ops returns every operation in declaration order.
func Ops() []Op {
	return []Op{OpInsert, OpRemove, OpDelete, OpGet, OpSet, OpPush, OpPop, OpShift, OpUnshift}
}

// weight returns the configured weight for op.
func weight(m config.Mix, op Op) int {
	switch op {
	case OpInsert:
		return m.Insert
	case OpRemove:
		return m.Remove
	case OpDelete:
		return m.Delete
	case OpGet:
		return m.Get
	case OpSet:
		return m.Set
	case OpPush:
		return m.Push
	case OpPop:
		return m.Pop
	case OpShift:
		return m.Shift
	case OpUnshift:
		return m.Unshift
	default:
		return 0
	}
}
