package staff

import (
	"context"

	"github.com/stafftools/staff-service/internal/pkg/cmd"
	"github.com/stafftools/staff-service/internal/staff/api"
	"github.com/stafftools/staff-service/internal/staff/app/service"
	"github.com/stafftools/staff-service/internal/staff/domain"
	staffsql "github.com/stafftools/staff-service/internal/staff/infra/sql"
	"github.com/stafftools/staff-service/pkg/convert"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
	"github.com/stafftools/staff-service/pkg/lazy"
	"github.com/stafftools/staff-service/pkg/persistence"
	pkgsql "github.com/stafftools/staff-service/pkg/sql"
	pkgtime "github.com/stafftools/staff-service/pkg/time"
	"github.com/stafftools/staff-service/pkg/worker"

	staffdata "github.com/stafftools/staff-service/data/sql/staff"
	staffhttp "github.com/stafftools/staff-service/internal/staff/infra/http"
)

type DependencyContainer struct {
	StaffService lazy.Loader[api.StaffService]

	staffService            lazy.Loader[service.Staff]
	hireEmployeeHandler     lazy.Loader[staffhttp.HireEmployeeHandler]
	getEmployeeByIDHandler  lazy.Loader[staffhttp.GetEmployeeByIDHandler]
	listEmployeesHandler    lazy.Loader[staffhttp.ListEmployeesHandler]
	changeSupervisorHandler lazy.Loader[staffhttp.ChangeSupervisorHandler]
	fireEmployeeHandler     lazy.Loader[staffhttp.FireEmployeeHandler]
}

func NewDependencyContainer(
	clock lazy.Loader[pkgtime.Clock],
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) DependencyContainer {
	transaction := transactionProvider(db)
	employeeRepo := employeeRepoProvider(db, dbMigrations)
	staffService := staffServiceProvider(clock, transaction, employeeRepo)
	httpConverters := httpConvertersProvider()

	return DependencyContainer{
		StaffService: lazy.New(func() (api.StaffService, error) {
			impl, err := staffService.Load()
			return impl, err
		}),
		staffService: staffService,
		hireEmployeeHandler: lazy.New(func() (staffhttp.HireEmployeeHandler, error) {
			return staffhttp.NewHireEmployeeHandler(staffService.MustLoad()), nil
		}),
		getEmployeeByIDHandler: lazy.New(func() (staffhttp.GetEmployeeByIDHandler, error) {
			return staffhttp.NewGetEmployeeByIDHandler(staffService.MustLoad(), httpConverters.MustLoad()), nil
		}),
		listEmployeesHandler: lazy.New(func() (staffhttp.ListEmployeesHandler, error) {
			return staffhttp.NewListEmployeesHandler(staffService.MustLoad(), httpConverters.MustLoad()), nil
		}),
		changeSupervisorHandler: lazy.New(func() (staffhttp.ChangeSupervisorHandler, error) {
			return staffhttp.NewChangeSupervisorHandler(staffService.MustLoad()), nil
		}),
		fireEmployeeHandler: lazy.New(func() (staffhttp.FireEmployeeHandler, error) {
			return staffhttp.NewFireEmployeeHandler(staffService.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.hireEmployeeHandler.MustLoad())
	registry.Register(c.getEmployeeByIDHandler.MustLoad())
	registry.Register(c.listEmployeesHandler.MustLoad())
	registry.Register(c.changeSupervisorHandler.MustLoad())
	registry.Register(c.fireEmployeeHandler.MustLoad())
}

// PurgeFiredEmployeesJob permanently removes fired employees past the
// retention period, intended to run periodically in the worker process.
func (c *DependencyContainer) PurgeFiredEmployeesJob() worker.ErrorJob {
	return func(ctx context.Context) error {
		staffService, err := c.staffService.Load()
		if err != nil {
			return err
		}

		return staffService.PurgeFired(ctx)
	}
}

func transactionProvider(db lazy.Loader[pkgsql.Database]) lazy.Loader[persistence.Transaction] {
	return lazy.New(func() (persistence.Transaction, error) {
		return pkgsql.NewTransaction(db.MustLoad(), domain.Name, nil), nil
	})
}

func employeeRepoProvider(
	db lazy.Loader[pkgsql.Database],
	dbMigrations lazy.Loader[cmd.SQLMigrations],
) lazy.Loader[domain.EmployeeRepository] {
	return lazy.New(func() (domain.EmployeeRepository, error) {
		dbMigrations.MustLoad().MustRegisterSource(staffdata.Migrations)

		return staffsql.NewEmployeeRepository(
			pkgsql.NewTransactionalClient(db.MustLoad()),
			staffsql.NewSqlxConverter(),
		), nil
	})
}

func staffServiceProvider(
	clock lazy.Loader[pkgtime.Clock],
	transaction lazy.Loader[persistence.Transaction],
	employeeRepo lazy.Loader[domain.EmployeeRepository],
) lazy.Loader[service.Staff] {
	return lazy.New(func() (service.Staff, error) {
		return service.NewStaffService(
			clock.MustLoad(),
			transaction.MustLoad(),
			employeeRepo.MustLoad(),
			service.NewDTOConverter(),
		), nil
	})
}

func httpConvertersProvider() lazy.Loader[convert.Registry] {
	return lazy.New(func() (convert.Registry, error) {
		return staffhttp.MustConverterRegistry(), nil
	})
}
