package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Matricula Dashboard API",
        "description": "School administration dashboard: enrollment, users, attendance, calendar and documents.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Catalog",
            "description": "Grades and sections"
        },
        {
            "name": "Enrollment",
            "description": "Matriculation table and row actions"
        },
        {
            "name": "Wizard",
            "description": "Step-by-step enrollment"
        },
        {
            "name": "Users",
            "description": "User directory and bulk actions"
        },
        {
            "name": "Attendance",
            "description": "Simulated attendance dashboard"
        },
        {
            "name": "Calendar",
            "description": "Academic calendar"
        },
        {
            "name": "Documents",
            "description": "Generated PDFs and bulk downloads"
        },
        {
            "name": "Activity",
            "description": "Activity log"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    },
                    "503": {
                        "description": "Loading"
                    }
                }
            }
        },
        "/metrics": {
            "get": {
                "summary": "Prometheus metrics",
                "produces": [
                    "text/plain"
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        },
        "/api/v1/catalog/grades": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "Grade catalog",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/enrollment/students": {
            "get": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Derived enrollment view",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "kpi",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "KPI selector",
                        "enum": [
                            "Matriculados",
                            "Traslados",
                            "Retirados",
                            "Vacantes disp."
                        ]
                    },
                    {
                        "name": "tag",
                        "in": "query",
                        "type": "array",
                        "required": false,
                        "description": "Committed tags in order",
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/enrollment/kpis": {
            "get": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Enrollment KPI counts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/enrollment/tags": {
            "post": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Apply a tag command",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TagCommandRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/enrollment/students/export": {
            "get": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Export the enrollment view",
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "csv",
                            "pdf"
                        ]
                    },
                    {
                        "name": "kpi",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "tag",
                        "in": "query",
                        "type": "array",
                        "required": false,
                        "items": {
                            "type": "string"
                        },
                        "collectionFormat": "multi"
                    }
                ],
                "produces": [
                    "text/csv",
                    "application/pdf"
                ]
            }
        },
        "/api/v1/enrollment/students/{dni}": {
            "get": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Student detail",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "dni",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Document number"
                    }
                ]
            }
        },
        "/api/v1/enrollment/students/{dni}/transfer": {
            "post": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Mark as transferred",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "dni",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Document number"
                    }
                ]
            }
        },
        "/api/v1/enrollment/students/{dni}/withdraw": {
            "post": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Mark as withdrawn",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "dni",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Document number"
                    }
                ]
            }
        },
        "/api/v1/enrollment/students/{dni}/assign-vacancy": {
            "post": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Assign a vacancy",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "dni",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Document number"
                    }
                ]
            }
        },
        "/api/v1/enrollment/students/{dni}/change-section": {
            "post": {
                "tags": [
                    "Enrollment"
                ],
                "summary": "Change section or shift",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "dni",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Document number"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SectionChangeRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/enrollment/wizard": {
            "post": {
                "tags": [
                    "Wizard"
                ],
                "summary": "Start an enrollment wizard session",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/enrollment/wizard/{id}": {
            "get": {
                "tags": [
                    "Wizard"
                ],
                "summary": "Wizard session state",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Session ID"
                    }
                ]
            }
        },
        "/api/v1/enrollment/wizard/{id}/identification": {
            "put": {
                "tags": [
                    "Wizard"
                ],
                "summary": "Identify the student to enroll",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Session ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/IdentificationRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/enrollment/wizard/{id}/placement": {
            "put": {
                "tags": [
                    "Wizard"
                ],
                "summary": "Set level, grade, section and condition",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Session ID"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/PlacementRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/enrollment/wizard/{id}/next": {
            "post": {
                "tags": [
                    "Wizard"
                ],
                "summary": "Advance to the next step",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Session ID"
                    }
                ]
            }
        },
        "/api/v1/enrollment/wizard/{id}/back": {
            "post": {
                "tags": [
                    "Wizard"
                ],
                "summary": "Return to the previous step",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Session ID"
                    }
                ]
            }
        },
        "/api/v1/enrollment/wizard/{id}/finish": {
            "post": {
                "tags": [
                    "Wizard"
                ],
                "summary": "Confirm the enrollment",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Session ID"
                    }
                ]
            }
        },
        "/api/v1/users": {
            "get": {
                "tags": [
                    "Users"
                ],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "kind",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "student",
                            "staff",
                            "parent"
                        ]
                    },
                    {
                        "name": "role",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "level",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "sort",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "order",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "asc",
                            "desc"
                        ]
                    },
                    {
                        "name": "page",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "perPage",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/users/bulk-delete": {
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Delete selected users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/BulkUsersRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/users/bulk-id-cards": {
            "post": {
                "tags": [
                    "Users"
                ],
                "summary": "Generate ID cards for the selected students",
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/BulkUsersRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/attendance/dashboard": {
            "get": {
                "tags": [
                    "Attendance"
                ],
                "summary": "Attendance KPIs, weekday chart and alerts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "X-Client-Session",
                        "in": "header",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "populationFocus",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "Estudiantes",
                            "Docentes"
                        ]
                    },
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "Hoy",
                            "Semana",
                            "Mes",
                            "Año"
                        ]
                    },
                    {
                        "name": "level",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "Todos",
                            "Inicial",
                            "Primaria",
                            "Secundaria"
                        ]
                    },
                    {
                        "name": "grade",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "section",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ]
            }
        },
        "/api/v1/attendance/report": {
            "get": {
                "tags": [
                    "Attendance"
                ],
                "summary": "Attendance report PDF",
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "populationFocus",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "Estudiantes",
                            "Docentes"
                        ]
                    },
                    {
                        "name": "timeRange",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "Hoy",
                            "Semana",
                            "Mes",
                            "Año"
                        ]
                    },
                    {
                        "name": "level",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "enum": [
                            "Todos",
                            "Inicial",
                            "Primaria",
                            "Secundaria"
                        ]
                    },
                    {
                        "name": "grade",
                        "in": "query",
                        "type": "string",
                        "required": false
                    },
                    {
                        "name": "section",
                        "in": "query",
                        "type": "string",
                        "required": false
                    }
                ],
                "produces": [
                    "application/pdf"
                ]
            }
        },
        "/api/v1/calendar/events": {
            "get": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Events of a month",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "ref",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "YYYY-MM"
                    }
                ]
            },
            "post": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Create calendar event",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateEventRequest"
                        }
                    }
                ]
            }
        },
        "/api/v1/calendar/events/day": {
            "get": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Events of a day",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "date",
                        "in": "query",
                        "type": "string",
                        "required": true,
                        "description": "YYYY-MM-DD"
                    }
                ]
            }
        },
        "/api/v1/calendar/events/{id}": {
            "delete": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Delete calendar event",
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Event ID"
                    }
                ]
            }
        },
        "/api/v1/calendar/month": {
            "get": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Month grid with event counts",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "year",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    },
                    {
                        "name": "ref",
                        "in": "query",
                        "type": "string",
                        "required": false,
                        "description": "YYYY-MM"
                    }
                ]
            }
        },
        "/api/v1/documents/students/{dni}/enrollment-form": {
            "get": {
                "tags": [
                    "Documents"
                ],
                "summary": "Enrollment form PDF",
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "dni",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Student DNI"
                    }
                ],
                "produces": [
                    "application/pdf"
                ]
            }
        },
        "/api/v1/documents/students/{dni}/certificate": {
            "get": {
                "tags": [
                    "Documents"
                ],
                "summary": "Enrollment certificate PDF",
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "dni",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Student DNI"
                    }
                ],
                "produces": [
                    "application/pdf"
                ]
            }
        },
        "/api/v1/documents/jobs/{id}": {
            "get": {
                "tags": [
                    "Documents"
                ],
                "summary": "Document job status",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Job ID"
                    }
                ]
            }
        },
        "/api/v1/documents/download": {
            "get": {
                "tags": [
                    "Documents"
                ],
                "summary": "Download a finished document job",
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Not found"
                    },
                    "410": {
                        "description": "Expired"
                    }
                },
                "parameters": [
                    {
                        "name": "token",
                        "in": "query",
                        "type": "string",
                        "required": true
                    }
                ],
                "produces": [
                    "application/pdf"
                ]
            }
        },
        "/api/v1/activity-logs": {
            "get": {
                "tags": [
                    "Activity"
                ],
                "summary": "Recent activity, newest first",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                },
                "parameters": [
                    {
                        "name": "limit",
                        "in": "query",
                        "type": "integer",
                        "required": false
                    }
                ]
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total_count": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "pagination": {
                    "$ref": "#/definitions/Pagination"
                },
                "meta": {
                    "type": "object"
                }
            }
        },
        "TagCommandRequest": {
            "type": "object",
            "properties": {
                "tags": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "action": {
                    "type": "string",
                    "enum": [
                        "add",
                        "remove",
                        "backspace"
                    ]
                },
                "input": {
                    "type": "string"
                }
            }
        },
        "SectionChangeRequest": {
            "type": "object",
            "properties": {
                "grade": {
                    "type": "string"
                },
                "section": {
                    "type": "string"
                },
                "shift": {
                    "type": "string",
                    "enum": [
                        "Mañana",
                        "Tarde"
                    ]
                }
            }
        },
        "IdentificationRequest": {
            "type": "object",
            "properties": {
                "query": {
                    "type": "string"
                },
                "paternalLastName": {
                    "type": "string"
                },
                "maternalLastName": {
                    "type": "string"
                },
                "names": {
                    "type": "string"
                },
                "gender": {
                    "type": "string",
                    "enum": [
                        "Hombre",
                        "Mujer"
                    ]
                },
                "birthDate": {
                    "type": "string",
                    "format": "date"
                }
            }
        },
        "PlacementRequest": {
            "type": "object",
            "properties": {
                "level": {
                    "type": "string",
                    "enum": [
                        "Inicial",
                        "Primaria",
                        "Secundaria"
                    ]
                },
                "grade": {
                    "type": "string"
                },
                "section": {
                    "type": "string"
                },
                "shift": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "condition": {
                    "type": "string"
                }
            }
        },
        "BulkUsersRequest": {
            "type": "object",
            "properties": {
                "dnis": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "CreateEventRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "category": {
                    "type": "string"
                },
                "date": {
                    "type": "string",
                    "format": "date"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
