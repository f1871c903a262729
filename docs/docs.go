// Package docs provides swagger documentation for the Resource Planner API.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Resource Planner API",
        "description": "Capacity utilization alerts, heatmap and resource allocation management",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "email": "support@example.com"
        },
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "1.0"
    },
    "host": "{{.Host}}",
    "basePath": "/",
    "paths": {
        "/api/dashboard/alerts": {
            "get": {
                "description": "Categorizes active resources into critical, error, warning, info and unassigned by their peak weekly utilization. Weeks already over are skipped.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Dashboard"
                ],
                "summary": "Capacity alerts",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Department or role filter, unknown values mean all",
                        "name": "department",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Period start (YYYY-MM-DD)",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Period end (YYYY-MM-DD)",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Alert payload",
                        "schema": {
                            "$ref": "#/definitions/AlertPayload"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/dashboard/heatmap": {
            "get": {
                "description": "Returns one row per active resource with a cell per remaining ISO week. Without a period the next 12 weeks are shown.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Dashboard"
                ],
                "summary": "Weekly utilization heatmap",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Department or role filter, unknown values mean all",
                        "name": "department",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Period start (YYYY-MM-DD)",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Period end (YYYY-MM-DD)",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Heatmap",
                        "schema": {
                            "$ref": "#/definitions/Heatmap"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/dashboard/resources/{id}/breakdown": {
            "get": {
                "description": "Returns the weekly utilization of a resource, its hours per project, the overallocated weeks and recommendations.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Dashboard"
                ],
                "summary": "Resource utilization breakdown",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Period start (YYYY-MM-DD)",
                        "name": "startDate",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "Period end (YYYY-MM-DD)",
                        "name": "endDate",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Breakdown",
                        "schema": {
                            "$ref": "#/definitions/Breakdown"
                        }
                    },
                    "400": {
                        "description": "Invalid resource ID",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Resource not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/resources": {
            "get": {
                "description": "Returns every resource, active or not",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Resources"
                ],
                "summary": "List resources",
                "responses": {
                    "200": {
                        "description": "List of resources",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Resource"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Weekly capacity defaults to 40 hours and new resources are active",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Resources"
                ],
                "summary": "Create a resource",
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Resource to create",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateResourceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created resource",
                        "schema": {
                            "$ref": "#/definitions/Resource"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/resources/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Resources"
                ],
                "summary": "Get a resource",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Resource",
                        "schema": {
                            "$ref": "#/definitions/Resource"
                        }
                    },
                    "400": {
                        "description": "Invalid ID",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Resource not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Only the fields present in the body are changed",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Resources"
                ],
                "summary": "Update a resource",
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Resource fields to update",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateResourceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated resource",
                        "schema": {
                            "$ref": "#/definitions/Resource"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Resource not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Resources"
                ],
                "summary": "Delete a resource",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/SuccessResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Resource not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/resources/{id}/allocations": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "List a resource's allocations",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Resource ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Allocations",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Allocation"
                            }
                        }
                    },
                    "404": {
                        "description": "Resource not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/projects": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "List projects",
                "responses": {
                    "200": {
                        "description": "List of projects",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Project"
                            }
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Projects"
                ],
                "summary": "Create a project",
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Project to create",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateProjectRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created project",
                        "schema": {
                            "$ref": "#/definitions/Project"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/allocations": {
            "post": {
                "description": "Assigns a resource to a project. weekly_hours is keyed by ISO week (\"2024-W05\") and takes precedence over allocated_hours_total. An overload alert is posted to the webhook when the resource ends up critical or overallocated.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Create an allocation",
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Allocation to create",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertAllocationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created allocation",
                        "schema": {
                            "$ref": "#/definitions/Allocation"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Resource or project not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/allocations/{id}": {
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Replace an allocation",
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Allocation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Allocation",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertAllocationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Updated allocation",
                        "schema": {
                            "$ref": "#/definitions/Allocation"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Allocation, resource or project not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Allocations"
                ],
                "summary": "Delete an allocation",
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Allocation ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Success",
                        "schema": {
                            "$ref": "#/definitions/SuccessResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Allocation not found",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/settings/alerts": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Get alert thresholds",
                "responses": {
                    "200": {
                        "description": "Alert thresholds",
                        "schema": {
                            "$ref": "#/definitions/AlertSettings"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "description": "Thresholds must be ordered under-utilization <= warning <= error <= critical. Cached alert payloads are dropped.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Settings"
                ],
                "summary": "Update alert thresholds",
                "consumes": [
                    "application/json"
                ],
                "security": [
                    {
                        "ApiKeyAuth": []
                    }
                ],
                "parameters": [
                    {
                        "description": "Alert thresholds",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AlertSettings"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Stored thresholds",
                        "schema": {
                            "$ref": "#/definitions/AlertSettings"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string",
                    "example": "resource not found"
                }
            }
        },
        "SuccessResponse": {
            "type": "object",
            "properties": {
                "success": {
                    "type": "boolean"
                }
            }
        },
        "Resource": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "weekly_capacity_hours": {
                    "type": "number",
                    "example": 40
                },
                "is_active": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Project": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "Allocation": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "resource_id": {
                    "type": "integer"
                },
                "project_id": {
                    "type": "integer"
                },
                "start_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "end_date": {
                    "type": "string",
                    "format": "date-time"
                },
                "status": {
                    "type": "string",
                    "example": "active"
                },
                "allocated_hours_total": {
                    "type": "number"
                },
                "weekly_hours": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number"
                    }
                }
            }
        },
        "AlertSettings": {
            "type": "object",
            "properties": {
                "warningThreshold": {
                    "type": "number",
                    "example": 90
                },
                "errorThreshold": {
                    "type": "number",
                    "example": 100
                },
                "criticalThreshold": {
                    "type": "number",
                    "example": 120
                },
                "underUtilizationThreshold": {
                    "type": "number",
                    "example": 50
                }
            },
            "required": [
                "warningThreshold",
                "errorThreshold",
                "criticalThreshold",
                "underUtilizationThreshold"
            ]
        },
        "CreateResourceRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "weekly_capacity_hours": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 168
                },
                "is_active": {
                    "type": "boolean"
                }
            },
            "required": [
                "name"
            ]
        },
        "UpdateResourceRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "weekly_capacity_hours": {
                    "type": "number",
                    "minimum": 0,
                    "maximum": 168
                },
                "is_active": {
                    "type": "boolean"
                }
            }
        },
        "CreateProjectRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                }
            },
            "required": [
                "name"
            ]
        },
        "UpsertAllocationRequest": {
            "type": "object",
            "properties": {
                "resource_id": {
                    "type": "integer"
                },
                "project_id": {
                    "type": "integer"
                },
                "start_date": {
                    "type": "string",
                    "example": "2024-03-11"
                },
                "end_date": {
                    "type": "string",
                    "example": "2024-03-24"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "active",
                        "planned",
                        "completed",
                        "cancelled"
                    ]
                },
                "allocated_hours_total": {
                    "type": "number",
                    "minimum": 0
                },
                "weekly_hours": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "number",
                        "minimum": 0
                    },
                    "example": {
                        "2024-W11": 30
                    }
                }
            },
            "required": [
                "resource_id",
                "project_id",
                "start_date",
                "end_date"
            ]
        },
        "WeekUtilization": {
            "type": "object",
            "properties": {
                "weekKey": {
                    "type": "string",
                    "example": "2024-W11"
                },
                "allocatedHours": {
                    "type": "number"
                },
                "utilizationPercent": {
                    "type": "integer"
                }
            }
        },
        "AlertResource": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "weeklyCapacityHours": {
                    "type": "number"
                },
                "peakUtilizationPercent": {
                    "type": "integer"
                },
                "totalAllocatedHours": {
                    "type": "number"
                },
                "peakWeekKey": {
                    "type": "string",
                    "example": "2024-W11"
                },
                "weeklyBreakdown": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/WeekUtilization"
                    }
                }
            }
        },
        "AlertCategory": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "critical",
                        "error",
                        "warning",
                        "info",
                        "unassigned"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "color": {
                    "type": "string"
                },
                "icon": {
                    "type": "string"
                },
                "threshold": {
                    "type": "number"
                },
                "count": {
                    "type": "integer"
                },
                "resources": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/AlertResource"
                    }
                }
            }
        },
        "AlertPayload": {
            "type": "object",
            "properties": {
                "categories": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/AlertCategory"
                    }
                },
                "summary": {
                    "type": "object",
                    "properties": {
                        "totalAlerts": {
                            "type": "integer"
                        },
                        "criticalCount": {
                            "type": "integer"
                        },
                        "warningCount": {
                            "type": "integer"
                        },
                        "infoCount": {
                            "type": "integer"
                        },
                        "unassignedCount": {
                            "type": "integer"
                        }
                    }
                },
                "metadata": {
                    "type": "object",
                    "properties": {
                        "department": {
                            "type": "string",
                            "example": "all"
                        },
                        "startDate": {
                            "type": "string"
                        },
                        "endDate": {
                            "type": "string"
                        },
                        "generatedAt": {
                            "type": "string",
                            "format": "date-time"
                        }
                    }
                }
            }
        },
        "HeatmapCell": {
            "type": "object",
            "properties": {
                "weekKey": {
                    "type": "string",
                    "example": "2024-W11"
                },
                "allocatedHours": {
                    "type": "number"
                },
                "utilizationPercent": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "available",
                        "near-capacity",
                        "overallocated"
                    ]
                },
                "color": {
                    "type": "string",
                    "example": "#dc2626"
                }
            }
        },
        "Heatmap": {
            "type": "object",
            "properties": {
                "period": {
                    "type": "object",
                    "properties": {
                        "startDate": {
                            "type": "string",
                            "example": "2024-03-11"
                        },
                        "endDate": {
                            "type": "string",
                            "example": "2024-03-24"
                        },
                        "isForwardLooking": {
                            "type": "boolean"
                        },
                        "excludedPastWeeks": {
                            "type": "integer"
                        }
                    }
                },
                "weeks": {
                    "type": "array",
                    "items": {
                        "type": "string",
                        "example": "2024-W11"
                    }
                },
                "resources": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "resourceId": {
                                "type": "integer"
                            },
                            "name": {
                                "type": "string"
                            },
                            "department": {
                                "type": "string"
                            },
                            "effectiveWeeklyCapacity": {
                                "type": "number"
                            },
                            "peakUtilizationPercent": {
                                "type": "integer"
                            },
                            "weeks": {
                                "type": "array",
                                "items": {
                                    "$ref": "#/definitions/HeatmapCell"
                                }
                            }
                        }
                    }
                },
                "metadata": {
                    "type": "object",
                    "properties": {
                        "department": {
                            "type": "string",
                            "example": "all"
                        },
                        "startDate": {
                            "type": "string"
                        },
                        "endDate": {
                            "type": "string"
                        },
                        "generatedAt": {
                            "type": "string",
                            "format": "date-time"
                        }
                    }
                }
            }
        },
        "Recommendation": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "example": "redistribution"
                },
                "priority": {
                    "type": "string",
                    "enum": [
                        "critical",
                        "high",
                        "medium",
                        "low"
                    ]
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "Breakdown": {
            "type": "object",
            "properties": {
                "resourceId": {
                    "type": "integer"
                },
                "resourceName": {
                    "type": "string"
                },
                "department": {
                    "type": "string"
                },
                "period": {
                    "type": "object",
                    "properties": {
                        "startDate": {
                            "type": "string",
                            "example": "2024-03-11"
                        },
                        "endDate": {
                            "type": "string",
                            "example": "2024-03-24"
                        },
                        "isForwardLooking": {
                            "type": "boolean"
                        },
                        "excludedPastWeeks": {
                            "type": "integer"
                        }
                    }
                },
                "utilization": {
                    "type": "object",
                    "properties": {}
                },
                "category": {
                    "type": "string"
                },
                "projects": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "projectId": {
                                "type": "integer"
                            },
                            "projectName": {
                                "type": "string"
                            },
                            "hours": {
                                "type": "number"
                            },
                            "allocations": {
                                "type": "integer"
                            }
                        }
                    }
                },
                "problematicWeeks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/WeekUtilization"
                    }
                },
                "recommendations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Recommendation"
                    }
                },
                "metadata": {
                    "type": "object",
                    "properties": {
                        "department": {
                            "type": "string",
                            "example": "all"
                        },
                        "startDate": {
                            "type": "string"
                        },
                        "endDate": {
                            "type": "string"
                        },
                        "generatedAt": {
                            "type": "string",
                            "format": "date-time"
                        }
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "x-api-key",
            "in": "header",
            "description": "API Key for protected endpoints"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Resource Planner API",
	Description:      "Capacity utilization alerts, heatmap and resource allocation management",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
