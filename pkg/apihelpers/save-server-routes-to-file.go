package apihelpers

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/gin-gonic/gin"
)

// WriteRoutesToFile dumps the registered routes, sorted by path, for debugging.
func WriteRoutesToFile(router *gin.Engine, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := writeRoutes(file, router.Routes()); err != nil {
		return err
	}
	slog.Debug("routes written to file", slog.String("filename", filename))
	return nil
}

func writeRoutes(w io.Writer, routes gin.RoutesInfo) error {
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	for _, route := range routes {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", route.Method, route.Path); err != nil {
			return err
		}
	}
	return nil
}
