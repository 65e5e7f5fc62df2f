// Package api holds the OpenAPI document for the backend, served by gin-swagger at /docs.
package api

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
        "/": {
            "get": {
                "description": "Entrypoint for the budget API, linking to all resources",
                "tags": ["General"],
                "summary": "API root",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/root.Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/budgets": {
            "get": {
                "description": "Returns all budgets",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "List budgets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Budget"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "post": {
                "description": "Creates a new budget. userId, totalAmount, startDate and description are required.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Create budget",
                "parameters": [
                    {"description": "Budget", "name": "budget", "in": "body", "required": true, "schema": {"$ref": "#/definitions/budget.BudgetEditable"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Budget"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budgets"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/budgets/user/{userId}": {
            "get": {
                "description": "Returns all budgets of the user. Responds with 404 if the user has no budgets.",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "List budgets of a user",
                "parameters": [
                    {"type": "string", "description": "ID of the user", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Budget"}}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budgets"],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {"type": "string", "description": "ID of the user", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/budgets/{id}": {
            "get": {
                "description": "Returns a specific budget",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Get budget",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Budget"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "put": {
                "description": "Updates the fields of the budget that are set in the body and returns the updated budget.\nThe updated budget must still have all required fields.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Update budget",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true},
                    {"description": "Budget", "name": "budget", "in": "body", "required": true, "schema": {"$ref": "#/definitions/budget.BudgetEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Budget"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "patch": {
                "description": "Updates the fields of the budget that are set in the body and returns the updated budget.\nThe updated budget must still have all required fields.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Update budget",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true},
                    {"description": "Budget", "name": "budget", "in": "body", "required": true, "schema": {"$ref": "#/definitions/budget.BudgetEditable"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Budget"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "delete": {
                "description": "Deletes a budget",
                "produces": ["application/json"],
                "tags": ["Budgets"],
                "summary": "Delete budget",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/budget.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["Budgets"],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {"type": "string", "description": "ID formatted as string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/healthz": {
            "get": {
                "description": "Pings the budget database. Responds with 204 if it answers, with 500 and the error if it does not.",
                "produces": ["application/json"],
                "tags": ["General"],
                "summary": "Database health",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/httperrors.HTTPError"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/version": {
            "get": {
                "description": "Returns the version of the budget backend that serves the request",
                "tags": ["General"],
                "summary": "Backend version",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/version.Response"}}
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": ["General"],
                "summary": "Allowed HTTP verbs",
                "responses": {"204": {"description": "No Content"}}
            }
        }
    },
    "definitions": {
        "budget.BudgetEditable": {
            "type": "object",
            "properties": {
                "currency": {"description": "Currency of the budget", "type": "string", "example": "€"},
                "description": {"description": "Description of the budget", "type": "string", "example": "Groceries"},
                "endDate": {"description": "Day the budget ends", "type": "string", "format": "date", "example": "2024-01-31"},
                "startDate": {"description": "Day the budget starts", "type": "string", "format": "date", "example": "2024-01-01"},
                "totalAmount": {"description": "Total amount of the budget", "type": "number", "example": 500},
                "userId": {"description": "ID of the user owning the budget", "type": "string", "example": "u1"}
            }
        },
        "budget.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Budget deleted successfully"}
            }
        },
        "httperrors.HTTPError": {
            "type": "object",
            "properties": {
                "error": {"description": "Underlying error, only set for server errors", "type": "string", "example": "sql: database is closed"},
                "message": {"description": "Human readable description", "type": "string", "example": "Budget not found"}
            }
        },
        "models.Budget": {
            "type": "object",
            "properties": {
                "createdAt": {"description": "Time the resource was created", "type": "string", "example": "2022-04-02T19:28:44.491514Z"},
                "currency": {"description": "Currency of the budget", "type": "string", "example": "€"},
                "description": {"description": "Description of the budget", "type": "string", "example": "Groceries"},
                "endDate": {"description": "Day the budget ends", "type": "string", "format": "date", "example": "2024-01-31"},
                "id": {"description": "UUID for the resource", "type": "string", "example": "65392deb-5e92-4268-b114-297faad6cdce"},
                "startDate": {"description": "Day the budget starts", "type": "string", "format": "date", "example": "2024-01-01"},
                "totalAmount": {"description": "Total amount of the budget", "type": "number", "example": 500},
                "updatedAt": {"description": "Last time the resource was updated", "type": "string", "example": "2022-04-17T20:14:01.048145Z"},
                "userId": {"description": "ID of the user owning the budget", "type": "string", "example": "u1"}
            }
        },
        "root.Links": {
            "type": "object",
            "properties": {
                "budgets": {"description": "All budgets", "type": "string", "example": "https://example.com/api/budgets"},
                "budgetsByUser": {"description": "Budgets of one user", "type": "string", "example": "https://example.com/api/budgets/user/{userId}"},
                "docs": {"description": "API documentation", "type": "string", "example": "https://example.com/api/docs/index.html"},
                "healthz": {"description": "Database health check", "type": "string", "example": "https://example.com/api/healthz"},
                "metrics": {"description": "Prometheus metrics", "type": "string", "example": "https://example.com/api/metrics"},
                "version": {"description": "Version of the backend", "type": "string", "example": "https://example.com/api/version"}
            }
        },
        "root.Response": {
            "type": "object",
            "properties": {
                "links": {"$ref": "#/definitions/root.Links"}
            }
        },
        "version.Object": {
            "type": "object",
            "properties": {
                "version": {"description": "Version of the running budget backend", "type": "string", "example": "1.1.0"}
            }
        },
        "version.Response": {
            "type": "object",
            "properties": {
                "data": {"description": "Version information", "allOf": [{"$ref": "#/definitions/version.Object"}]}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
