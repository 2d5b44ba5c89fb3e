package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/regionkit/track"
)

// Plan is a scripted sequence of tracker operations, loaded from YAML.
//
// Example:
//
//	capacity: 64
//	ops:
//	  - {op: insert, id: 1, start: 0, length: 8}
//	  - {op: insert, id: 2, length: 16}   # no start: placed first-fit
//	  - {op: find, length: 4}
//	  - {op: remove, id: 1}
//	  - {op: compact}
type Plan struct {
	Capacity uint64   `yaml:"capacity"`
	Ops      []PlanOp `yaml:"ops"`
}

// PlanOp is one step of a plan. Start is a pointer so that "absent" is
// distinguishable from 0: an insert without a start is placed by FindFree.
type PlanOp struct {
	Op     string  `yaml:"op"`
	ID     int64   `yaml:"id"`
	Start  *uint64 `yaml:"start"`
	Length uint64  `yaml:"length"`
}

func loadPlan(path string) (*Plan, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read plan %s", path)
	}

	var p Plan
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, errors.Wrapf(err, "parse plan %s", path)
	}
	if p.Capacity == 0 {
		return nil, errors.Errorf("plan %s: capacity must be non-zero", path)
	}
	for i, op := range p.Ops {
		switch op.Op {
		case "insert", "remove", "compact", "find":
		default:
			return nil, errors.Errorf("plan %s: op %d: unknown op %q", path, i, op.Op)
		}
	}
	return &p, nil
}

// apply runs the plan against rt. Rejected inserts are reported through
// onReject and skipped; with strict set, the first rejection aborts the plan.
// onReject may be nil.
func (p *Plan) apply(rt *track.Tracker, strict bool, onReject func(step int, op PlanOp, err error)) error {
	if onReject == nil {
		onReject = func(int, PlanOp, error) {}
	}
	for i, op := range p.Ops {
		switch op.Op {
		case "insert":
			start := uint64(0)
			if op.Start != nil {
				start = *op.Start
			} else {
				s, ok := rt.FindFree(op.Length)
				if !ok {
					err := fmt.Errorf("no free run of %d slots", op.Length)
					if strict {
						return errors.Wrapf(err, "op %d: insert id %d", i, op.ID)
					}
					onReject(i, op, err)
					continue
				}
				start = s
			}
			if err := rt.Insert(track.ID(op.ID), start, op.Length); err != nil {
				if strict {
					return errors.Wrapf(err, "op %d: insert id %d", i, op.ID)
				}
				onReject(i, op, err)
			}

		case "remove":
			if !rt.Remove(track.ID(op.ID)) {
				err := fmt.Errorf("id %d not found", op.ID)
				if strict {
					return errors.Wrapf(err, "op %d: remove", i)
				}
				onReject(i, op, err)
			}

		case "compact":
			rt.Compact()

		case "find":
			start, ok := rt.FindFree(op.Length)
			if ok {
				printInfo("find %d -> %d\n", op.Length, start)
			} else {
				printInfo("find %d -> no fit\n", op.Length)
			}
		}
	}
	return nil
}
