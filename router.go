package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes binds every operation of doc to the handler registered
// under its operationId. An operation without a handler is an error.
func RegisterRoutes(app *fiber.App, doc *openapi3.T, handlers map[string]fiber.Handler) ([]string, error) {
	paths := make([]string, 0, len(doc.Paths))
	for path := range doc.Paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	var endpoints []string
	for _, path := range paths {
		route := fiberPath(path)
		for method, op := range doc.Paths[path].Operations() {
			handler, ok := handlers[op.OperationID]
			if !ok {
				return nil, fmt.Errorf("no handler for operation %q (%s %s)", op.OperationID, method, path)
			}
			app.Add(method, route, handler)
			endpoints = append(endpoints, strings.ToUpper(method)+" "+path)
		}
	}
	sort.Strings(endpoints)
	return endpoints, nil
}

// fiberPath turns an OpenAPI template such as /api/doce/{codigo_grupo}
// into the Fiber form /api/doce/:codigo_grupo.
func fiberPath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			segments[i] = ":" + strings.TrimSuffix(strings.TrimPrefix(seg, "{"), "}")
		}
	}
	return strings.Join(segments, "/")
}

func logEndpoints(endpoints []string) {
	if len(endpoints) == 0 {
		return
	}
	log.Println("Available endpoints:")
	for _, e := range endpoints {
		log.Printf("  %s", e)
	}
}
