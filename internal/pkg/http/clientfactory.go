package http

import (
	"fmt"

	"github.com/stafftools/staff-service/pkg/env"
	pkghttp "github.com/stafftools/staff-service/pkg/http"
	pkgstrings "github.com/stafftools/staff-service/pkg/strings"
)

const DestinationStaffService pkghttp.Destination = "staffService"

type ClientFactory struct {
	impl pkghttp.ClientFactory
}

func NewClientFactory(opts ...pkghttp.ClientOption) ClientFactory {
	return ClientFactory{
		impl: pkghttp.NewClientFactory(opts...),
	}
}

// MustInitClient resolves the destination base URL from the
// <SCREAMING_SNAKE_DESTINATION>_SERVICE_URL environment variable.
func (f ClientFactory) MustInitClient(dest pkghttp.Destination, extraOpts ...pkghttp.ClientOption) pkghttp.Client {
	hostEnv := fmt.Sprintf("%s_SERVICE_URL", pkgstrings.ToScreamingSnakeCase(string(dest)))
	baseURL := env.Must(env.Parse[string](hostEnv))

	return f.impl.InitClient(dest, baseURL, extraOpts...)
}
