// Package swagger holds the generated OpenAPI document served under
// /swagger. Regenerate with swag init when handler annotations change.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/sync/download": {
            "get": {
                "description": "Full catalog snapshot: plants in the projection language plus auxiliary collections.",
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Download catalog snapshot",
                "responses": {
                    "200": {
                        "description": "Catalog Snapshot",
                        "schema": {"type": "object"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object"}
                    }
                }
            }
        },
        "/sync/upload": {
            "post": {
                "description": "Merge a client payload. Bad items are skipped and reported; only a malformed payload fails the request.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["sync"],
                "summary": "Upload client changes",
                "parameters": [
                    {
                        "description": "Push payload",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "object"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Merge Report",
                        "schema": {"type": "object"}
                    },
                    "400": {
                        "description": "Malformed Payload",
                        "schema": {"type": "object"}
                    }
                }
            }
        },
        "/backup/run": {
            "post": {
                "description": "Upload a timestamped catalog snapshot and the media tree to object storage.",
                "produces": ["application/json"],
                "tags": ["backup"],
                "summary": "Run a backup",
                "responses": {
                    "200": {
                        "description": "Backup Result",
                        "schema": {"type": "object"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object"}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Verdex Catalog API",
	Description:      "API for the Verdex plant catalog back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
