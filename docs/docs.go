// Package docs registers the API description served at /swagger.
package docs

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
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Dashboard"}},
                    "302": {"description": "Not signed in"},
                    "503": {"description": "Session still loading"}
                }
            }
        },
        "/auth": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Login view",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginView"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["upstream"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["upstream"],
                "summary": "Register an account",
                "parameters": [
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ports.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "409": {"description": "Conflict", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "string"}}
                }
            }
        },
        "/companies": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Company list",
                "parameters": [
                    {"type": "string", "description": "Name, city or PIB", "name": "search", "in": "query"},
                    {"type": "string", "description": "Company status or all", "name": "status", "in": "query"},
                    {"type": "string", "description": "Assigned accountant id or all", "name": "accountant", "in": "query"},
                    {"type": "string", "description": "name, tasks or overdue", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.CompanyListing"}}
                }
            }
        },
        "/companies/list": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["upstream"],
                "summary": "List companies",
                "parameters": [
                    {"description": "Filters", "name": "body", "in": "body", "schema": {"$ref": "#/definitions/domain.CompanyListRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Company"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "string"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "string"}}
                }
            }
        },
        "/companies/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Refresh company list",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.CompanyListing"}}
                }
            }
        },
        "/companies/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Company profile",
                "parameters": [{"type": "string", "description": "Company id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.CompanyProfile"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/documents": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Document list",
                "parameters": [
                    {"type": "string", "description": "File or company name", "name": "search", "in": "query"},
                    {"type": "string", "description": "Company id or all", "name": "company", "in": "query"},
                    {"type": "string", "description": "Document type or all", "name": "type", "in": "query"},
                    {"type": "string", "description": "Document status or all", "name": "status", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/documents/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Document detail",
                "parameters": [{"type": "string", "description": "Document id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Document"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionView"}},
                    "302": {"description": "Not signed in"}
                }
            }
        },
        "/session/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign in",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/session/logout": {
            "post": {
                "tags": ["session"],
                "summary": "Sign out",
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/session/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Sign up",
                "parameters": [
                    {"description": "Account details", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RegisterInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.registerView"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.errorBody"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/settings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Settings",
                "responses": {"200": {"description": "OK"}, "302": {"description": "Not allowed"}}
            }
        },
        "/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Task list",
                "parameters": [
                    {"type": "string", "description": "Id, company, description or PIB", "name": "search", "in": "query"},
                    {"type": "string", "description": "Task status or all", "name": "status", "in": "query"},
                    {"type": "string", "description": "Priority or all", "name": "priority", "in": "query"},
                    {"type": "string", "description": "Assigned accountant id or all", "name": "accountant", "in": "query"},
                    {"type": "string", "description": "Company id or all", "name": "company", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/tasks/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Task detail",
                "parameters": [{"type": "string", "description": "Task id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.TaskDetail"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.errorBody"}}
                }
            }
        },
        "/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["views"],
                "summary": "Users",
                "responses": {"200": {"description": "OK"}, "302": {"description": "Not allowed"}}
            }
        }
    },
    "definitions": {
        "domain.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.AuthUser"}
            }
        },
        "domain.AuthUser": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "username": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string", "enum": ["director", "administrator", "accountant"]},
                "avatar": {"type": "string"}
            }
        },
        "domain.Company": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "pib": {"type": "string"},
                "city": {"type": "string"},
                "sector": {"type": "string"},
                "assignedAccountantId": {"type": "string"},
                "assignedAccountantName": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "onboarding", "paused", "inactive"]},
                "openTasks": {"type": "integer"},
                "overdueTasks": {"type": "integer"},
                "contactPerson": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "domain.CompanyListRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "responsibleId": {"type": "string"},
                "sort": {"type": "string", "enum": ["name", "tasks", "overdue"]}
            }
        },
        "domain.Document": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fileName": {"type": "string"},
                "companyId": {"type": "string"},
                "companyName": {"type": "string"},
                "type": {"type": "string"},
                "period": {"type": "string"},
                "status": {"type": "string"},
                "uploadedById": {"type": "string"},
                "uploadedByName": {"type": "string"},
                "uploadDate": {"type": "string", "format": "date-time"},
                "size": {"type": "string"}
            }
        },
        "domain.Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "companyId": {"type": "string"},
                "companyName": {"type": "string"},
                "companyPib": {"type": "string"},
                "period": {"type": "string"},
                "type": {"type": "string"},
                "status": {"type": "string"},
                "priority": {"type": "string"},
                "dueDate": {"type": "string", "format": "date-time"},
                "assignedAccountantId": {"type": "string"},
                "assignedAccountantName": {"type": "string"},
                "lastUpdate": {"type": "string", "format": "date-time"},
                "commentsCount": {"type": "integer"},
                "description": {"type": "string"}
            }
        },
        "domain.UserProfile": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "avatar": {"type": "string"}
            }
        },
        "domain.CapabilitySet": {
            "type": "object",
            "properties": {
                "canManageUsers": {"type": "boolean"},
                "canManageCompanies": {"type": "boolean"},
                "canAssignTasks": {"type": "boolean"},
                "canApproveTasks": {"type": "boolean"}
            }
        },
        "domain.NavItem": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "path": {"type": "string"}
            }
        },
        "handler.errorBody": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "handler.loginRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.loginView": {
            "type": "object",
            "properties": {
                "state": {"type": "string", "enum": ["loading", "authenticated", "unauthenticated"]},
                "session": {"$ref": "#/definitions/handler.sessionView"}
            }
        },
        "handler.registerView": {
            "type": "object",
            "properties": {
                "registered": {"type": "boolean"},
                "session": {"$ref": "#/definitions/handler.sessionView"}
            }
        },
        "handler.sessionView": {
            "type": "object",
            "properties": {
                "user": {"$ref": "#/definitions/domain.UserProfile"},
                "capabilities": {"$ref": "#/definitions/domain.CapabilitySet"},
                "navigation": {"type": "array", "items": {"$ref": "#/definitions/domain.NavItem"}}
            }
        },
        "ports.RegisterRequest": {
            "type": "object",
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "service.CompanyListing": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/domain.Company"}},
                "total": {"type": "integer"},
                "source": {"type": "string", "enum": ["remote", "catalog"]},
                "status": {"type": "string", "enum": ["idle", "pending", "error", "success"]},
                "error": {"type": "string"}
            }
        },
        "service.CompanyProfile": {
            "type": "object",
            "properties": {
                "company": {"$ref": "#/definitions/domain.Company"},
                "tasks": {"type": "array", "items": {"$ref": "#/definitions/domain.Task"}},
                "documents": {"type": "array", "items": {"$ref": "#/definitions/domain.Document"}}
            }
        },
        "service.Dashboard": {
            "type": "object",
            "properties": {
                "stats": {"type": "object"},
                "deadlines": {"type": "array", "items": {"$ref": "#/definitions/domain.Task"}},
                "workload": {"type": "array", "items": {"type": "object"}}
            }
        },
        "service.LoginInput": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string", "minLength": 6}
            }
        },
        "service.RegisterInput": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string", "minLength": 6},
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "service.TaskDetail": {
            "type": "object",
            "properties": {
                "task": {"$ref": "#/definitions/domain.Task"},
                "company": {"$ref": "#/definitions/domain.Company"},
                "documents": {"type": "array", "items": {"$ref": "#/definitions/domain.Document"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Back-office console API",
	Description:      "Session, views and the bundled upstream API of the accounting back-office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
