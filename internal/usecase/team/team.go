package team

import (
	"context"

	"github.com/BruksfildServices01/barber-frontdesk/internal/audit"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/employee"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

// ======================================================
// LIST
// ======================================================

type ListEmployees struct {
	repo frontdesk.Repository
}

func NewListEmployees(repo frontdesk.Repository) *ListEmployees {
	return &ListEmployees{repo: repo}
}

func (uc *ListEmployees) Execute(ctx context.Context) ([]employee.Employee, error) {
	snap, err := uc.repo.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Employees, nil
}

// ======================================================
// ADD
// ======================================================

type AddEmployee struct {
	repo  frontdesk.Repository
	audit *audit.Dispatcher
	now   timezone.Clock
}

func NewAddEmployee(
	repo frontdesk.Repository,
	audit *audit.Dispatcher,
	now timezone.Clock,
) *AddEmployee {
	return &AddEmployee{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *AddEmployee) Execute(
	ctx context.Context,
	actor string,
	name string,
) (*employee.Employee, error) {

	var created employee.Employee
	_, err := uc.repo.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		list, emp, err := employee.Add(snap.Employees, name, uc.now())
		if err != nil {
			return snap, err
		}
		snap.Employees = list
		created = emp
		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "employee_added",
		Entity:   "employee",
		EntityID: created.ID,
		Metadata: map[string]string{"name": created.Name},
	})

	return &created, nil
}

// ======================================================
// DELETE
// ======================================================

// DeleteEmployee removes the employee from the team. Their appointments
// keep the name they were booked with.
type DeleteEmployee struct {
	repo  frontdesk.Repository
	audit *audit.Dispatcher
}

func NewDeleteEmployee(
	repo frontdesk.Repository,
	audit *audit.Dispatcher,
) *DeleteEmployee {
	return &DeleteEmployee{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteEmployee) Execute(
	ctx context.Context,
	actor string,
	id string,
) error {

	_, err := uc.repo.Update(ctx, func(snap frontdesk.Snapshot) (frontdesk.Snapshot, error) {
		list, err := employee.Remove(snap.Employees, id)
		if err != nil {
			return snap, err
		}
		snap.Employees = list
		return snap, nil
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Action:   "employee_deleted",
		Entity:   "employee",
		EntityID: id,
	})
	return nil
}
