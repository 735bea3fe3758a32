package api

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "in": "header",
            "name": "X-API-Key"
        }
    },
    "security": [
        {
            "ApiKeyAuth": []
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "tags": ["system"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Collector is healthy", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/decode": {
            "post": {
                "summary": "Decode a stats dump without storing it",
                "tags": ["dumps"],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "dump", "required": true, "description": "Raw stats.dmp bytes", "schema": {"type": "string", "format": "binary"}}
                ],
                "responses": {
                    "200": {"description": "Decoded record", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Empty body", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "413": {"description": "Dump too large", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "422": {"description": "Dump could not be decoded", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/dumps": {
            "get": {
                "summary": "List archived dumps",
                "tags": ["dumps"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "Archive entries", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            },
            "post": {
                "summary": "Decode and archive a stats dump",
                "tags": ["dumps"],
                "consumes": ["application/octet-stream"],
                "produces": ["application/json"],
                "parameters": [
                    {"in": "body", "name": "dump", "required": true, "description": "Raw stats.dmp bytes", "schema": {"type": "string", "format": "binary"}}
                ],
                "responses": {
                    "200": {"description": "Identical dump already archived", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "201": {"description": "Dump archived", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "413": {"description": "Dump too large", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "422": {"description": "Dump could not be decoded", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/dumps/{id}": {
            "get": {
                "summary": "Get an archived dump with its decoded record",
                "tags": ["dumps"],
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "Entry and record", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "400": {"description": "Invalid ID", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Dump not found", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            },
            "delete": {
                "summary": "Delete an archived dump",
                "tags": ["dumps"],
                "produces": ["application/json"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "Dump deleted", "schema": {"$ref": "#/definitions/APIResponse"}},
                    "404": {"description": "Dump not found", "schema": {"$ref": "#/definitions/APIResponse"}}
                }
            }
        },
        "/dumps/{id}/text": {
            "get": {
                "summary": "Get an archived dump as a text report",
                "tags": ["dumps"],
                "produces": ["text/plain"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "Text report"},
                    "404": {"description": "Dump not found"}
                }
            }
        },
        "/dumps/{id}/raw": {
            "get": {
                "summary": "Download the original dump bytes",
                "tags": ["dumps"],
                "produces": ["application/octet-stream"],
                "parameters": [{"$ref": "#/parameters/id"}],
                "responses": {
                    "200": {"description": "Raw stats.dmp bytes"},
                    "404": {"description": "Dump not found"}
                }
            }
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "required": true, "type": "string", "description": "Archive entry ID"}
    },
    "definitions": {
        "APIResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {},
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "statsdump collector API",
	Description:      "Decodes and archives Red Alert stats dumps.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
