package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/client"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/employee"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
)

const (
	employeeCount        = 3
	clientCount          = 10
	historyMonths        = 6
	perMonthAppointments = 12
)

type service struct {
	name  string
	price int64
}

var services = []service{
	{"Corte", 45},
	{"Barba", 35},
	{"Corte + Barba", 70},
	{"Pezinho", 15},
	{"Sobrancelha", 20},
}

var methods = []appointment.PaymentMethod{
	appointment.PaymentCash,
	appointment.PaymentPix,
	appointment.PaymentCard,
}

// Mock builds a demo dataset around now: a small team, a client base with
// one soft deleted client and one renamed client, today's agenda and six
// months of history. The same faker seed always yields the same dataset.
func Mock(now time.Time, f *gofakeit.Faker) frontdesk.Snapshot {
	employees := mockEmployees(now, f)
	clients := mockClients(now, f)

	var apps []appointment.Appointment
	apps = append(apps, mockToday(now, f, employees, clients)...)
	apps = append(apps, mockHistory(now, f, employees, clients)...)

	// The last client is renamed after booking, the one before it is
	// removed; both keep their appointments.
	renamed := &clients[len(clients)-1]
	apps = append(apps, book(f, now.Add(2*time.Hour), employees[0], *renamed))
	renamed.Name = renamed.Name + " " + f.LastName()

	deletedAt := now.AddDate(0, 0, -3)
	deleted := &clients[len(clients)-2]
	apps = append(apps, book(f, now.Add(3*time.Hour), employees[1%len(employees)], *deleted))
	deleted.DeletedAt = &deletedAt

	return frontdesk.Snapshot{
		Appointments: appointment.Insert(nil, apps...),
		Clients:      clients,
		Employees:    employees,
	}
}

func mockEmployees(now time.Time, f *gofakeit.Faker) []employee.Employee {
	out := make([]employee.Employee, 0, employeeCount)
	for i := 0; i < employeeCount; i++ {
		out = append(out, employee.Employee{
			ID:   employee.NewID(now.Add(-time.Duration(employeeCount-i) * time.Hour)),
			Name: f.FirstName(),
		})
	}
	return out
}

func mockClients(now time.Time, f *gofakeit.Faker) []client.Client {
	out := make([]client.Client, 0, clientCount)
	for i := 0; i < clientCount; i++ {
		out = append(out, client.Client{
			ID:         fmt.Sprintf("c-%d", i+1),
			Name:       f.Name(),
			Phone:      f.Phone(),
			TotalSpent: decimal.NewFromInt(int64(f.IntRange(0, 2000))),
		})
	}
	return out
}

// mockToday fills the working day from 9h: past slots are settled, future
// slots are still scheduled.
func mockToday(
	now time.Time,
	f *gofakeit.Faker,
	employees []employee.Employee,
	clients []client.Client,
) []appointment.Appointment {

	day := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
	out := make([]appointment.Appointment, 0, 9)

	for slot := 0; slot < 9; slot++ {
		ts := day.Add(time.Duration(slot) * time.Hour)
		emp := employees[slot%len(employees)]
		c := clients[f.IntRange(0, len(clients)-3)]

		ap := book(f, ts, emp, c)
		if ts.Before(now) {
			ap = settle(f, ap)
		}
		out = append(out, ap)
	}
	return out
}

func mockHistory(
	now time.Time,
	f *gofakeit.Faker,
	employees []employee.Employee,
	clients []client.Client,
) []appointment.Appointment {

	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	out := make([]appointment.Appointment, 0, historyMonths*perMonthAppointments)

	for back := 1; back <= historyMonths; back++ {
		month := first.AddDate(0, -back, 0)
		days := month.AddDate(0, 1, -1).Day()

		for i := 0; i < perMonthAppointments; i++ {
			ts := month.
				AddDate(0, 0, f.IntRange(0, days-1)).
				Add(time.Duration(f.IntRange(9, 18)) * time.Hour)
			emp := employees[f.IntRange(0, len(employees)-1)]
			c := clients[f.IntRange(0, len(clients)-3)]

			out = append(out, settle(f, book(f, ts, emp, c)))
		}
	}
	return out
}

func book(
	f *gofakeit.Faker,
	ts time.Time,
	emp employee.Employee,
	c client.Client,
) appointment.Appointment {

	svc := services[f.IntRange(0, len(services)-1)]
	ap := appointment.New(f.UUID(), c.ID, c.Name, emp.Name, svc.name, ts)
	ap.Price = decimal.NewFromInt(svc.price)
	return ap
}

// settle moves a past appointment to a final state: mostly paid, with the
// occasional no-show, cancellation or unpaid service.
func settle(f *gofakeit.Faker, ap appointment.Appointment) appointment.Appointment {
	switch roll := f.IntRange(1, 20); {
	case roll == 1:
		ap.Status = appointment.StatusNoShow
	case roll == 2:
		ap.Status = appointment.StatusCanceled
	case roll == 3:
		ap.Status = appointment.StatusCompleted
	default:
		ap.Status = appointment.StatusCompleted
		ap.IsPaid = true
		ap.PaymentMethod = methods[f.IntRange(0, len(methods)-1)]
	}
	return ap
}
