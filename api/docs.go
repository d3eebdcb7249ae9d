// Package docs holds the OpenAPI description served at /docs.
//
// It is built from the swag annotations of the handlers in
// internal/router and internal/controllers. Run
// "swag init --output api" after changing them.
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
                "description": "Entrypoint for the API, listing all endpoints",
                "tags": [
                    "General"
                ],
                "summary": "API root",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.RootResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/healthz": {
            "get": {
                "description": "Returns the application health and, if not healthy, an error",
                "tags": [
                    "General"
                ],
                "summary": "Get health",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/healthz.HealthResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1": {
            "get": {
                "description": "Returns general information about the v1 API",
                "tags": [
                    "v1"
                ],
                "summary": "v1 API",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.Response"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "v1"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/v1/budgets": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Creates new budgets for the household of the authenticated user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Create budgets",
                "parameters": [
                    {
                        "description": "Budgets",
                        "name": "budgets",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.BudgetEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetCreateResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a list of budgets of the household of the authenticated user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budgets",
                "parameters": [
                    {
                        "description": "Filter by name",
                        "name": "name",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Is the budget active?",
                        "name": "active",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "description": "Search for this text in the name",
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first budget returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of budgets to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetListResponse"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a specific budget",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update an existing budget. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Update budget",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "description": "Budget",
                        "name": "budget",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a budget",
                "tags": [
                    "Budgets"
                ],
                "summary": "Delete budget",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/comparison": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "description": "Compares the spending in the budget period with the spending in the comparison period of the preset",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget comparison",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "description": "Comparison preset",
                        "name": "preset",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "default",
                            "month-on-month",
                            "3-months-ago",
                            "6-months-ago",
                            "year-on-year",
                            "2-years-ago"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetComparisonResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetComparisonResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetComparisonResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetComparisonResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetComparisonResponse"
                        }
                    }
                }
            }
        },
        "/v1/budgets/{id}/periods": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Budgets"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns the period of the budget and the period it is compared to for the preset",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Budgets"
                ],
                "summary": "Get budget periods",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "description": "Comparison preset",
                        "name": "preset",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "default",
                            "month-on-month",
                            "3-months-ago",
                            "6-months-ago",
                            "year-on-year",
                            "2-years-ago"
                        ]
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPeriodsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPeriodsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPeriodsResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPeriodsResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.BudgetPeriodsResponse"
                        }
                    }
                }
            }
        },
        "/v1/category-rules": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Category Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Creates new category rules for the household of the authenticated user",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Create category rules",
                "parameters": [
                    {
                        "description": "Category rules",
                        "name": "rules",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.CategoryRuleEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleCreateResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleCreateResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns the category rules of the household of the authenticated user in the order they are applied",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Get category rules",
                "parameters": [
                    {
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Only rules whose pattern matches this store name",
                        "name": "store",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first rule returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of rules to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleListResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleListResponse"
                        }
                    }
                }
            }
        },
        "/v1/category-rules/{id}": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Category Rules"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a specific category rule",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Get category rule",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update an existing category rule. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Category Rules"
                ],
                "summary": "Update category rule",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "description": "Category rule",
                        "name": "rule",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.CategoryRuleResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a category rule",
                "tags": [
                    "Category Rules"
                ],
                "summary": "Delete category rule",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/households": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Households"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Creates a new household. The authenticated user becomes its owner and the household becomes their current one.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Households"
                ],
                "summary": "Create household",
                "parameters": [
                    {
                        "description": "Household",
                        "name": "household",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdEditable"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdResponse"
                        }
                    }
                }
            }
        },
        "/v1/households/join": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Households"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Joins the household with the invite code. It becomes the current household of the authenticated user.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Households"
                ],
                "summary": "Join household",
                "parameters": [
                    {
                        "description": "Invite code",
                        "name": "join",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdJoin"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdResponse"
                        }
                    }
                }
            }
        },
        "/v1/households/leave": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Households"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Leaves the current household of the authenticated user",
                "tags": [
                    "Households"
                ],
                "summary": "Leave household",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/households/mine": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Households"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "description": "Returns the household of the authenticated user with all members. Users without a household get an empty household and a message.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Households"
                ],
                "summary": "Get my household",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdOverviewResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdOverviewResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Returns the household of the authenticated user with all members. Users without a household get an empty household and a message.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Households"
                ],
                "summary": "Get my household",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdOverviewResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdOverviewResponse"
                        }
                    }
                }
            }
        },
        "/v1/households/{id}/members": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Households"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "description": "Returns all memberships of a household and the profiles of its members. Only members and admins can see them.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Households"
                ],
                "summary": "Get household members",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdMembersResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdMembersResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdMembersResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdMembersResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.HouseholdMembersResponse"
                        }
                    }
                }
            }
        },
        "/v1/inflation-rates": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Inflation Rates"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Creates new inflation rates. Admins only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inflation Rates"
                ],
                "summary": "Create inflation rates",
                "parameters": [
                    {
                        "description": "Inflation rates",
                        "name": "rates",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.InflationRateEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateCreateResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateCreateResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a list of inflation rates, newest months first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inflation Rates"
                ],
                "summary": "Get inflation rates",
                "parameters": [
                    {
                        "description": "Filter by month (YYYY-MM)",
                        "name": "month",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Rates for this month (YYYY-MM) and later",
                        "name": "fromMonth",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Rates for this month (YYYY-MM) and earlier",
                        "name": "untilMonth",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first rate returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of rates to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateListResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateListResponse"
                        }
                    }
                }
            }
        },
        "/v1/inflation-rates/{id}": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Inflation Rates"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a specific inflation rate",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inflation Rates"
                ],
                "summary": "Get inflation rate",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update an existing inflation rate. Only values to be updated need to be specified. Admins only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Inflation Rates"
                ],
                "summary": "Update inflation rate",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "description": "Inflation rate",
                        "name": "rate",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.InflationRateResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes an inflation rate permanently. Admins only.",
                "tags": [
                    "Inflation Rates"
                ],
                "summary": "Delete inflation rate",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/periods/align": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Periods"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Returns the period and the period it is compared to for the preset. Incomplete periods have no alignment.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Periods"
                ],
                "summary": "Align period",
                "parameters": [
                    {
                        "description": "Period",
                        "name": "period",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.PeriodAlign"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.PeriodAlignResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.PeriodAlignResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/periods/filter": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Periods"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Returns the records within the period and their spending summary. Records with invalid dates and periods with missing or invalid boundaries yield no records.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Periods"
                ],
                "summary": "Filter records",
                "parameters": [
                    {
                        "description": "Records and period",
                        "name": "filter",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.PeriodFilter"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.PeriodFilterResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.PeriodFilterResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/periods/presets": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Periods"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "description": "Returns all presets that can be used to compare periods",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Periods"
                ],
                "summary": "Get comparison presets",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.PeriodPresetsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/receipts": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Receipts"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Creates new receipts for the household of the authenticated user. Receipts without category are categorized with the category rules of the household.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Receipts"
                ],
                "summary": "Create receipts",
                "parameters": [
                    {
                        "description": "Receipts",
                        "name": "receipts",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/v1.ReceiptEditable"
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptCreateResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptCreateResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptCreateResponse"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a list of receipts of the household of the authenticated user, newest purchases first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Receipts"
                ],
                "summary": "Get receipts",
                "parameters": [
                    {
                        "description": "Receipts purchased on or after this date",
                        "name": "fromDate",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Receipts purchased on or before this date",
                        "name": "untilDate",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by category",
                        "name": "category",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Search for this text in the store name",
                        "name": "store",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Filter by ID of the user who created the receipt",
                        "name": "user",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "The offset of the first receipt returned. Defaults to 0.",
                        "name": "offset",
                        "in": "query",
                        "type": "integer"
                    },
                    {
                        "description": "Maximum number of receipts to return. Defaults to 50.",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptListResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptListResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptListResponse"
                        }
                    }
                }
            }
        },
        "/v1/receipts/{id}": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Receipts"
                ],
                "summary": "Allowed HTTP verbs",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "get": {
                "description": "Returns a specific receipt",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Receipts"
                ],
                "summary": "Get receipt",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    }
                }
            },
            "patch": {
                "description": "Update an existing receipt. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Receipts"
                ],
                "summary": "Update receipt",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    },
                    {
                        "description": "Receipt",
                        "name": "receipt",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.ReceiptResponse"
                        }
                    }
                }
            },
            "delete": {
                "description": "Deletes a receipt",
                "tags": [
                    "Receipts"
                ],
                "summary": "Delete receipt",
                "parameters": [
                    {
                        "description": "ignored, but needed: https://github.com/swaggo/swag/issues/1014",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "format": "uuid"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            }
        },
        "/v1/users": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Users"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "post": {
                "description": "Creates a new user. The bearer token of the user is only returned in this response. Admins only.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Create user",
                "parameters": [
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.UserCreate"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/v1.UserCreateResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserCreateResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserCreateResponse"
                        }
                    }
                }
            }
        },
        "/v1/users/me": {
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "Users"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            },
            "get": {
                "description": "Returns the profile of the authenticated user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Get the authenticated user",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    }
                }
            },
            "patch": {
                "description": "Updates the profile of the authenticated user. Only values to be updated need to be specified.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Update the authenticated user",
                "parameters": [
                    {
                        "description": "User",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/v1.UserEditable"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/v1.httpError"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/v1.UserResponse"
                        }
                    }
                }
            }
        },
        "/version": {
            "get": {
                "description": "Returns the software version of the API",
                "tags": [
                    "General"
                ],
                "summary": "API version",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/router.VersionResponse"
                        }
                    }
                }
            },
            "options": {
                "description": "Returns an empty response with the HTTP Header \"allow\" set to the allowed HTTP verbs",
                "tags": [
                    "General"
                ],
                "summary": "Allowed HTTP verbs",
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        }
    },
    "definitions": {
        "healthz.HealthResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "The database cannot be accessed"
                }
            }
        },
        "period.Period": {
            "type": "object",
            "properties": {
                "from": {
                    "type": "string",
                    "example": "2024-03-01"
                },
                "to": {
                    "type": "string",
                    "example": "2024-03-31"
                }
            }
        },
        "period.Record": {
            "type": "object",
            "properties": {
                "purchaseDate": {
                    "type": "string",
                    "description": "Date of the purchase. Records with unparsable dates are filtered out.",
                    "example": "2024-03-14"
                },
                "category": {
                    "type": "string",
                    "description": "Category of the purchase",
                    "example": "Dairy"
                },
                "cost": {
                    "type": "string",
                    "description": "Cost of the purchase",
                    "example": "12.99"
                }
            }
        },
        "router.RootLinks": {
            "type": "object",
            "properties": {
                "docs": {
                    "type": "string",
                    "description": "Swagger API documentation",
                    "example": "https://example.com/api/docs/index.html"
                },
                "healthz": {
                    "type": "string",
                    "description": "Healthz endpoint",
                    "example": "https://example.com/api/healthz"
                },
                "version": {
                    "type": "string",
                    "description": "Endpoint returning the version of the backend",
                    "example": "https://example.com/api/version"
                },
                "metrics": {
                    "type": "string",
                    "description": "Endpoint returning Prometheus metrics",
                    "example": "https://example.com/api/metrics"
                },
                "v1": {
                    "type": "string",
                    "description": "List endpoint for all v1 endpoints",
                    "example": "https://example.com/api/v1"
                }
            }
        },
        "router.RootResponse": {
            "type": "object",
            "properties": {
                "links": {
                    "$ref": "#/definitions/router.RootLinks"
                }
            }
        },
        "router.VersionObject": {
            "type": "object",
            "properties": {
                "version": {
                    "type": "string",
                    "description": "the running version of the Basketwise backend",
                    "example": "1.1.0"
                }
            }
        },
        "router.VersionResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data object for the version endpoint",
                    "allOf": [
                        {
                            "$ref": "#/definitions/router.VersionObject"
                        }
                    ]
                }
            }
        },
        "spending.CategoryChange": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "example": "Dairy"
                },
                "current": {
                    "type": "string",
                    "description": "Spending in the current period",
                    "example": "120"
                },
                "comparison": {
                    "type": "string",
                    "description": "Spending in the comparison period",
                    "example": "100"
                },
                "difference": {
                    "type": "string",
                    "description": "Current minus comparison",
                    "example": "20"
                },
                "changePercent": {
                    "type": "string",
                    "description": "Relative change in percent, null when nothing was spent in the comparison period",
                    "example": "20"
                }
            }
        },
        "spending.Change": {
            "type": "object",
            "properties": {
                "current": {
                    "type": "string",
                    "description": "Spending in the current period",
                    "example": "120"
                },
                "comparison": {
                    "type": "string",
                    "description": "Spending in the comparison period",
                    "example": "100"
                },
                "difference": {
                    "type": "string",
                    "description": "Current minus comparison",
                    "example": "20"
                },
                "changePercent": {
                    "type": "string",
                    "description": "Relative change in percent, null when nothing was spent in the comparison period",
                    "example": "20"
                }
            }
        },
        "spending.Comparison": {
            "type": "object",
            "properties": {
                "total": {
                    "$ref": "#/definitions/spending.Change"
                },
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/spending.CategoryChange"
                    },
                    "description": "Sorted by category name"
                }
            }
        },
        "spending.Summary": {
            "type": "object",
            "properties": {
                "total": {
                    "type": "string",
                    "description": "Sum of all amounts",
                    "example": "142.37"
                },
                "count": {
                    "type": "integer",
                    "description": "Number of records",
                    "example": 12
                },
                "categories": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    },
                    "description": "Sum of amounts per category"
                }
            }
        },
        "v1.Budget": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the budget",
                    "example": "Groceries March"
                },
                "amount": {
                    "type": "string",
                    "description": "Amount that can be spent in the period",
                    "example": "450"
                },
                "periodStart": {
                    "type": "string",
                    "description": "First day of the budget period",
                    "example": "2024-03-01"
                },
                "periodEnd": {
                    "type": "string",
                    "description": "Last day of the budget period",
                    "example": "2024-03-31"
                },
                "active": {
                    "type": "boolean",
                    "description": "Is the budget active?",
                    "example": true
                },
                "householdId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the household the budget belongs to",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "links": {
                    "$ref": "#/definitions/v1.BudgetLinks"
                }
            }
        },
        "v1.BudgetComparison": {
            "type": "object",
            "properties": {
                "preset": {
                    "type": "string",
                    "description": "The preset that was applied",
                    "example": "year-on-year"
                },
                "current": {
                    "description": "The budget period, null when the budget has no complete period",
                    "allOf": [
                        {
                            "$ref": "#/definitions/period.Period"
                        }
                    ]
                },
                "comparison": {
                    "description": "The comparison period, null for the default preset",
                    "allOf": [
                        {
                            "$ref": "#/definitions/period.Period"
                        }
                    ]
                },
                "amount": {
                    "type": "string",
                    "description": "Amount of the budget",
                    "example": "450"
                },
                "spent": {
                    "description": "Spending in the current period",
                    "allOf": [
                        {
                            "$ref": "#/definitions/spending.Summary"
                        }
                    ]
                },
                "comparisonSpent": {
                    "description": "Spending in the comparison period",
                    "allOf": [
                        {
                            "$ref": "#/definitions/spending.Summary"
                        }
                    ]
                },
                "remaining": {
                    "type": "string",
                    "description": "Amount minus spending in the current period",
                    "example": "107.63"
                },
                "changes": {
                    "description": "Changes between the periods, overall and per category",
                    "allOf": [
                        {
                            "$ref": "#/definitions/spending.Comparison"
                        }
                    ]
                }
            }
        },
        "v1.BudgetComparisonResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Spending comparison for the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.BudgetComparison"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.BudgetResponse"
                    },
                    "description": "List of created budgets or their respective error"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the budget",
                    "example": "Groceries March"
                },
                "amount": {
                    "type": "string",
                    "description": "Amount that can be spent in the period",
                    "example": "450"
                },
                "periodStart": {
                    "type": "string",
                    "description": "First day of the budget period",
                    "example": "2024-03-01"
                },
                "periodEnd": {
                    "type": "string",
                    "description": "Last day of the budget period",
                    "example": "2024-03-31"
                },
                "active": {
                    "type": "boolean",
                    "description": "Is the budget active?",
                    "example": true
                }
            }
        },
        "v1.BudgetLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The budget itself",
                    "example": "https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf"
                },
                "periods": {
                    "type": "string",
                    "description": "Aligned periods of the budget",
                    "example": "https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/periods"
                },
                "comparison": {
                    "type": "string",
                    "description": "Spending comparison for the budget",
                    "example": "https://example.com/api/v1/budgets/550dc009-cea6-4c12-b2a5-03446eb7b7cf/comparison"
                },
                "receipts": {
                    "type": "string",
                    "description": "Receipts in the budget period",
                    "example": "https://example.com/api/v1/receipts?fromDate=2024-03-01&untilDate=2024-03-31"
                }
            }
        },
        "v1.BudgetListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Budget"
                    },
                    "description": "List of budgets"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.BudgetPeriods": {
            "type": "object",
            "properties": {
                "preset": {
                    "type": "string",
                    "description": "The preset that was applied",
                    "example": "year-on-year"
                },
                "current": {
                    "description": "The budget period, null when the budget has no complete period",
                    "allOf": [
                        {
                            "$ref": "#/definitions/period.Period"
                        }
                    ]
                },
                "comparison": {
                    "description": "The comparison period, null for the default preset",
                    "allOf": [
                        {
                            "$ref": "#/definitions/period.Period"
                        }
                    ]
                }
            }
        },
        "v1.BudgetPeriodsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Aligned periods of the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.BudgetPeriods"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.BudgetResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the budget",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Budget"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CategoryRule": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "priority": {
                    "type": "integer",
                    "description": "Rules with lower priority are applied first",
                    "example": 3
                },
                "match": {
                    "type": "string",
                    "description": "Glob pattern matched against the store name, ignoring case",
                    "example": "*bakery*"
                },
                "category": {
                    "type": "string",
                    "description": "Category for matching receipts",
                    "example": "Bread"
                },
                "householdId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the household",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "links": {
                    "$ref": "#/definitions/v1.CategoryRuleLinks"
                }
            }
        },
        "v1.CategoryRuleCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryRuleResponse"
                    },
                    "description": "List of created category rules or their respective error"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.CategoryRuleEditable": {
            "type": "object",
            "properties": {
                "priority": {
                    "type": "integer",
                    "description": "Rules with lower priority are applied first",
                    "example": 3
                },
                "match": {
                    "type": "string",
                    "description": "Glob pattern matched against the store name, ignoring case",
                    "example": "*bakery*"
                },
                "category": {
                    "type": "string",
                    "description": "Category for matching receipts",
                    "example": "Bread"
                }
            }
        },
        "v1.CategoryRuleLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The category rule itself",
                    "example": "https://example.com/api/v1/category-rules/95685c82-53c6-455d-b235-f49960b73b21"
                }
            }
        },
        "v1.CategoryRuleListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.CategoryRule"
                    },
                    "description": "List of category rules"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.CategoryRuleResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the category rule",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.CategoryRule"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Household": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "description": "Name of the household",
                    "example": "Flat share"
                },
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 currency code used for all amounts",
                    "example": "EUR"
                },
                "inviteCode": {
                    "type": "string",
                    "description": "Code other users join the household with",
                    "example": "4F1A9C02BE"
                },
                "links": {
                    "$ref": "#/definitions/v1.HouseholdLinks"
                }
            }
        },
        "v1.HouseholdEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Name of the household",
                    "example": "Flat share"
                },
                "currency": {
                    "type": "string",
                    "description": "ISO 4217 currency code used for all amounts",
                    "example": "EUR"
                }
            }
        },
        "v1.HouseholdJoin": {
            "type": "object",
            "properties": {
                "inviteCode": {
                    "type": "string",
                    "description": "Invite code of the household",
                    "example": "4F1A9C02BE"
                }
            }
        },
        "v1.HouseholdLinks": {
            "type": "object",
            "properties": {
                "members": {
                    "type": "string",
                    "description": "Members of the household",
                    "example": "https://example.com/api/v1/households/3b1ea324-d438-4419-882a-2fc91d71772f/members"
                }
            }
        },
        "v1.HouseholdMembers": {
            "type": "object",
            "properties": {
                "memberships": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Membership"
                    },
                    "description": "All memberships of the household"
                },
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.User"
                    },
                    "description": "Profiles of all members that could be loaded"
                }
            }
        },
        "v1.HouseholdMembersResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Members of the household",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.HouseholdMembers"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.HouseholdOverview": {
            "type": "object",
            "properties": {
                "household": {
                    "description": "The household, null if the user has none",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Household"
                        }
                    ]
                },
                "members": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.User"
                    },
                    "description": "Profiles of all members that could be loaded"
                },
                "memberships": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Membership"
                    },
                    "description": "All memberships of the household"
                },
                "currentUserId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the requesting user",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "message": {
                    "type": "string",
                    "description": "Set when there is no household to show",
                    "example": "no household"
                }
            }
        },
        "v1.HouseholdOverviewResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "The household of the user",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.HouseholdOverview"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.HouseholdResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the household",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Household"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.InflationRate": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "month": {
                    "type": "string",
                    "description": "Month the rate applies to",
                    "example": "2024-03"
                },
                "category": {
                    "type": "string",
                    "description": "Category the rate applies to. Empty for all groceries",
                    "example": "Dairy"
                },
                "rate": {
                    "type": "string",
                    "description": "Year-on-year price change in percent",
                    "example": "3.2"
                },
                "source": {
                    "type": "string",
                    "description": "Where the rate was published",
                    "example": "Statistics office"
                },
                "links": {
                    "$ref": "#/definitions/v1.InflationRateLinks"
                }
            }
        },
        "v1.InflationRateCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.InflationRateResponse"
                    },
                    "description": "List of created inflation rates or their respective error"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.InflationRateEditable": {
            "type": "object",
            "properties": {
                "month": {
                    "type": "string",
                    "description": "Month the rate applies to",
                    "example": "2024-03"
                },
                "category": {
                    "type": "string",
                    "description": "Category the rate applies to. Empty for all groceries",
                    "example": "Dairy"
                },
                "rate": {
                    "type": "string",
                    "description": "Year-on-year price change in percent",
                    "example": "3.2"
                },
                "source": {
                    "type": "string",
                    "description": "Where the rate was published",
                    "example": "Statistics office"
                }
            }
        },
        "v1.InflationRateLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The inflation rate itself",
                    "example": "https://example.com/api/v1/inflation-rates/0f6d3c2b-4a8e-4c51-9b7e-2d1a6f5e8c90"
                }
            }
        },
        "v1.InflationRateListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.InflationRate"
                    },
                    "description": "List of inflation rates"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.InflationRateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the inflation rate",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.InflationRate"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Links": {
            "type": "object",
            "properties": {
                "households": {
                    "type": "string",
                    "example": "https://example.com/api/v1/households/mine"
                },
                "budgets": {
                    "type": "string",
                    "example": "https://example.com/api/v1/budgets"
                },
                "periods": {
                    "type": "string",
                    "example": "https://example.com/api/v1/periods/align"
                },
                "receipts": {
                    "type": "string",
                    "example": "https://example.com/api/v1/receipts"
                },
                "categoryRules": {
                    "type": "string",
                    "example": "https://example.com/api/v1/category-rules"
                },
                "inflationRates": {
                    "type": "string",
                    "example": "https://example.com/api/v1/inflation-rates"
                },
                "me": {
                    "type": "string",
                    "example": "https://example.com/api/v1/users/me"
                }
            }
        },
        "v1.Membership": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "householdId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the household",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "role": {
                    "type": "string",
                    "description": "Role of the user in the household",
                    "example": "owner"
                }
            }
        },
        "v1.Pagination": {
            "type": "object",
            "properties": {
                "count": {
                    "type": "integer",
                    "description": "The amount of records returned in this response",
                    "example": 25
                },
                "offset": {
                    "type": "integer",
                    "description": "The offset for the first record returned",
                    "example": 50
                },
                "limit": {
                    "type": "integer",
                    "description": "The maximum amount of resources to return for this request",
                    "example": 25
                },
                "total": {
                    "type": "integer",
                    "description": "The total number of resources matching the query",
                    "example": 827
                }
            }
        },
        "v1.PeriodAlign": {
            "type": "object",
            "properties": {
                "periodStart": {
                    "type": "string",
                    "description": "First day of the period",
                    "example": "2024-03-01"
                },
                "periodEnd": {
                    "type": "string",
                    "description": "Last day of the period",
                    "example": "2024-03-31"
                },
                "preset": {
                    "type": "string",
                    "description": "Comparison preset, unknown values fall back to \"default\"",
                    "example": "month-on-month"
                }
            }
        },
        "v1.PeriodAlignResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Aligned periods",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.BudgetPeriods"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.PeriodFilter": {
            "type": "object",
            "properties": {
                "records": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/period.Record"
                    },
                    "description": "Records to filter"
                },
                "from": {
                    "type": "string",
                    "description": "First day of the period. If it is missing or invalid, no record is returned",
                    "example": "2024-03-01"
                },
                "to": {
                    "type": "string",
                    "description": "Last day of the period. If it is missing or invalid, no record is returned",
                    "example": "2024-03-31"
                }
            }
        },
        "v1.PeriodFilterResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Filtered records",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.PeriodFilterResult"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.PeriodFilterResult": {
            "type": "object",
            "properties": {
                "records": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/period.Record"
                    },
                    "description": "Records within the period, in their original order"
                },
                "summary": {
                    "description": "Spending of the records within the period",
                    "allOf": [
                        {
                            "$ref": "#/definitions/spending.Summary"
                        }
                    ]
                }
            }
        },
        "v1.PeriodPresetsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "description": "All comparison presets",
                    "example": [
                        "default",
                        "month-on-month",
                        "3-months-ago",
                        "6-months-ago",
                        "year-on-year",
                        "2-years-ago"
                    ]
                }
            }
        },
        "v1.Receipt": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "store": {
                    "type": "string",
                    "description": "Name of the store",
                    "example": "Corner Market"
                },
                "purchaseDate": {
                    "type": "string",
                    "description": "Date of the purchase",
                    "example": "2024-03-14"
                },
                "category": {
                    "type": "string",
                    "description": "Category. When empty on creation, the category rules of the household are applied",
                    "example": "Dairy"
                },
                "total": {
                    "type": "string",
                    "description": "Total amount of the receipt",
                    "example": "23.47"
                },
                "note": {
                    "type": "string",
                    "description": "A note",
                    "example": "Birthday cake"
                },
                "householdId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the household",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "userId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "ID of the user who created the receipt",
                    "example": "1e777d24-3f5b-4c43-8000-04f65f895578"
                },
                "importHash": {
                    "type": "string",
                    "description": "Identifies the purchase, equal for duplicates",
                    "example": "2f9a1c0d7b6e5f4a3b2c1d0e9f8a7b6c5d4e3f2a1b0c9d8e7f6a5b4c3d2e1f0a"
                },
                "links": {
                    "$ref": "#/definitions/v1.ReceiptLinks"
                }
            }
        },
        "v1.ReceiptCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.ReceiptResponse"
                    },
                    "description": "List of created receipts or their respective error"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.ReceiptEditable": {
            "type": "object",
            "properties": {
                "store": {
                    "type": "string",
                    "description": "Name of the store",
                    "example": "Corner Market"
                },
                "purchaseDate": {
                    "type": "string",
                    "description": "Date of the purchase",
                    "example": "2024-03-14"
                },
                "category": {
                    "type": "string",
                    "description": "Category. When empty on creation, the category rules of the household are applied",
                    "example": "Dairy"
                },
                "total": {
                    "type": "string",
                    "description": "Total amount of the receipt",
                    "example": "23.47"
                },
                "note": {
                    "type": "string",
                    "description": "A note",
                    "example": "Birthday cake"
                }
            }
        },
        "v1.ReceiptLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The receipt itself",
                    "example": "https://example.com/api/v1/receipts/1e777d24-3f5b-4c43-8000-04f65f895578"
                }
            }
        },
        "v1.ReceiptListResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/v1.Receipt"
                    },
                    "description": "List of receipts"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                },
                "pagination": {
                    "description": "Pagination information",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Pagination"
                        }
                    ]
                }
            }
        },
        "v1.ReceiptResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the receipt",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Receipt"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.Response": {
            "type": "object",
            "properties": {
                "links": {
                    "description": "Links for the v1 API",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.Links"
                        }
                    ]
                }
            }
        },
        "v1.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string",
                    "format": "uuid",
                    "description": "UUID for the resource",
                    "example": "65392deb-5e92-4268-b114-297faad6cdce"
                },
                "createdAt": {
                    "type": "string",
                    "description": "Time the resource was created",
                    "example": "2022-04-02T19:28:44.491514Z"
                },
                "updatedAt": {
                    "type": "string",
                    "description": "Last time the resource was updated",
                    "example": "2022-04-17T20:14:01.048145Z"
                },
                "deletedAt": {
                    "type": "string",
                    "description": "Time the resource was marked as deleted",
                    "example": "2022-04-22T21:01:05.058161Z"
                },
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Alex"
                },
                "currency": {
                    "type": "string",
                    "description": "Preferred ISO 4217 currency code",
                    "example": "EUR"
                },
                "email": {
                    "type": "string",
                    "description": "Email address",
                    "example": "alex@example.com"
                },
                "admin": {
                    "type": "boolean",
                    "description": "Is the user an administrator?",
                    "example": false
                },
                "householdId": {
                    "type": "string",
                    "format": "uuid",
                    "description": "The current household of the user",
                    "example": "3b1ea324-d438-4419-882a-2fc91d71772f"
                },
                "links": {
                    "$ref": "#/definitions/v1.UserLinks"
                }
            }
        },
        "v1.UserCreate": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Alex"
                },
                "currency": {
                    "type": "string",
                    "description": "Preferred ISO 4217 currency code",
                    "example": "EUR"
                },
                "email": {
                    "type": "string",
                    "description": "Email address, must be unique",
                    "example": "alex@example.com"
                },
                "admin": {
                    "type": "boolean",
                    "description": "Is the user an administrator?",
                    "example": false
                }
            }
        },
        "v1.UserCreateResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the user",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.User"
                        }
                    ]
                },
                "token": {
                    "type": "string",
                    "description": "Bearer token of the user. It is only returned once.",
                    "example": "8c3a0c2f5e1b4f6aa0b3d3b7c1f2e4d58c3a0c2f5e1b4f6aa0b3d3b7c1f2e4d5"
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.UserEditable": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "description": "Display name",
                    "example": "Alex"
                },
                "currency": {
                    "type": "string",
                    "description": "Preferred ISO 4217 currency code",
                    "example": "EUR"
                }
            }
        },
        "v1.UserLinks": {
            "type": "object",
            "properties": {
                "self": {
                    "type": "string",
                    "description": "The user itself, only set for the authenticated user",
                    "example": "https://example.com/api/v1/users/me"
                }
            }
        },
        "v1.UserResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "description": "Data for the user",
                    "allOf": [
                        {
                            "$ref": "#/definitions/v1.User"
                        }
                    ]
                },
                "error": {
                    "type": "string",
                    "description": "The error, if any occurred",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        },
        "v1.httpError": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "the specified resource ID is not a valid UUID"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerToken": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
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
