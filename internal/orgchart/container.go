package orgchart

import (
	internalhttp "github.com/stafftools/staff-service/internal/pkg/http"

	"github.com/stafftools/staff-service/internal/orgchart/api"
	"github.com/stafftools/staff-service/internal/orgchart/app/service"
	"github.com/stafftools/staff-service/internal/orgchart/app/staff"
	orgcharthttp "github.com/stafftools/staff-service/internal/orgchart/infra/http"
	staffgateway "github.com/stafftools/staff-service/internal/orgchart/infra/staff/http"
	"github.com/stafftools/staff-service/pkg/convert"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
	"github.com/stafftools/staff-service/pkg/lazy"
)

type DependencyContainer struct {
	OrgChartService lazy.Loader[api.OrgChartService]

	getHierarchyHandler lazy.Loader[orgcharthttp.GetHierarchyHandler]
}

func NewDependencyContainer(clientFactory lazy.Loader[internalhttp.ClientFactory]) DependencyContainer {
	staffGateway := staffGatewayProvider(clientFactory)
	orgChartService := orgChartServiceProvider(staffGateway)
	httpConverters := httpConvertersProvider()

	return DependencyContainer{
		OrgChartService: lazy.New(func() (api.OrgChartService, error) {
			impl, err := orgChartService.Load()
			return impl, err
		}),
		getHierarchyHandler: lazy.New(func() (orgcharthttp.GetHierarchyHandler, error) {
			return orgcharthttp.NewGetHierarchyHandler(orgChartService.MustLoad(), httpConverters.MustLoad()), nil
		}),
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	registry.Register(c.getHierarchyHandler.MustLoad())
}

func staffGatewayProvider(clientFactory lazy.Loader[internalhttp.ClientFactory]) lazy.Loader[staff.Gateway] {
	return lazy.New(func() (staff.Gateway, error) {
		client := clientFactory.MustLoad().MustInitClient(internalhttp.DestinationStaffService)
		return staffgateway.NewGateway(client), nil
	})
}

func orgChartServiceProvider(staffGateway lazy.Loader[staff.Gateway]) lazy.Loader[service.OrgChart] {
	return lazy.New(func() (service.OrgChart, error) {
		return service.NewOrgChartService(
			staffGateway.MustLoad(),
			service.NewHierarchyConverter(service.NewEmployeeConverter()),
		), nil
	})
}

func httpConvertersProvider() lazy.Loader[convert.Registry] {
	return lazy.New(func() (convert.Registry, error) {
		return orgcharthttp.MustConverterRegistry(), nil
	})
}
