package cli

import (
	"fmt"

	actx "github.com/echobin/echobin/app/context"
	"github.com/echobin/echobin/web/server/api"
)

// Routes prints the endpoint route table.
type Routes struct{}

// Run the routes command.
func (c *Routes) Run(appCtx *actx.Context) error {
	data := [][]string{}
	for _, route := range api.Routes() {
		data = append(data, []string{route.Method, route.Path, route.Description})
	}

	err := renderTable([]string{"Method", "Path", "Description"}, data, appCtx.Stdout)
	if err != nil {
		return fmt.Errorf("failed rendering the route table: %w", err)
	}

	return nil
}
