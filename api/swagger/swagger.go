package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Abitur API",
        "description": "Evaluates Abitur course selections and stores worksheets",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "tags": [
        {
            "name": "Subjects",
            "description": "Subject catalog"
        },
        {
            "name": "Evaluations",
            "description": "Stateless grade evaluation"
        },
        {
            "name": "Worksheets",
            "description": "Persisted subject lists"
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
                        "description": "Dependency unavailable"
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
        "/api/v1/subjects/catalog": {
            "get": {
                "tags": [
                    "Subjects"
                ],
                "summary": "List available subjects",
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
        "/api/v1/evaluations": {
            "post": {
                "tags": [
                    "Evaluations"
                ],
                "summary": "Evaluate a subject selection",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/EvaluateRequest"
                        }
                    }
                ],
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
        "/api/v1/evaluations/export": {
            "post": {
                "tags": [
                    "Evaluations"
                ],
                "summary": "Render an evaluation report",
                "parameters": [
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "pdf",
                            "csv",
                            "json"
                        ],
                        "default": "pdf"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/EvaluateRequest"
                        }
                    }
                ],
                "produces": [
                    "application/pdf",
                    "text/csv",
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/v1/worksheets": {
            "post": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Create worksheet",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": false,
                        "schema": {
                            "$ref": "#/definitions/EvaluateRequest"
                        }
                    }
                ],
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
        "/api/v1/worksheets/{id}": {
            "get": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Get worksheet with evaluation",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Delete worksheet",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                }
            }
        },
        "/api/v1/worksheets/{id}/evaluation": {
            "get": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Evaluate worksheet",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/export": {
            "get": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Download worksheet",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "format",
                        "in": "query",
                        "type": "string",
                        "enum": [
                            "json",
                            "csv",
                            "pdf"
                        ],
                        "default": "json"
                    }
                ],
                "produces": [
                    "application/json",
                    "text/csv",
                    "application/pdf"
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "File",
                        "schema": {
                            "type": "file"
                        }
                    }
                }
            }
        },
        "/api/v1/worksheets/{id}/reset": {
            "post": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Clear all subjects",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/subjects": {
            "post": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Add catalog subject",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AddSubjectRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "put": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Replace subjects with an exported list",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/Subject"
                            }
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/subjects/{subjectId}": {
            "delete": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Remove subject",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "subjectId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/subjects/{subjectId}/level": {
            "put": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Change course level",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "subjectId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateCourseLevelRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/subjects/{subjectId}/exam": {
            "put": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Change exam kind",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "subjectId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpdateExamKindRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/subjects/{subjectId}/grades/{period}": {
            "put": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Set or clear a period grade",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "subjectId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "period",
                        "in": "path",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "Q1",
                            "Q2",
                            "Q3",
                            "Q4"
                        ]
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GradeValueRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/subjects/{subjectId}/exam-grade": {
            "put": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Set or clear the exam grade",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "subjectId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GradeValueRequest"
                        }
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
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
        "/api/v1/worksheets/{id}/subjects/{subjectId}/toggle": {
            "post": {
                "tags": [
                    "Worksheets"
                ],
                "summary": "Toggle whether a subject counts",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "subjectId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "PeriodGrades": {
            "type": "object",
            "properties": {
                "Q1": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 15,
                    "x-nullable": true
                },
                "Q2": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 15,
                    "x-nullable": true
                },
                "Q3": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 15,
                    "x-nullable": true
                },
                "Q4": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 15,
                    "x-nullable": true
                }
            }
        },
        "Subject": {
            "type": "object",
            "required": [
                "id",
                "name",
                "type",
                "examType"
            ],
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "LK",
                        "GK",
                        "None"
                    ]
                },
                "examType": {
                    "type": "string",
                    "enum": [
                        "Written",
                        "Oral",
                        "None"
                    ]
                },
                "grades": {
                    "$ref": "#/definitions/PeriodGrades"
                },
                "examGrade": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 15,
                    "x-nullable": true
                },
                "selected": {
                    "type": "boolean"
                }
            }
        },
        "EvaluateRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "subjects": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/Subject"
                    }
                }
            }
        },
        "AddSubjectRequest": {
            "type": "object",
            "required": [
                "catalog_id"
            ],
            "properties": {
                "catalog_id": {
                    "type": "string"
                }
            }
        },
        "UpdateCourseLevelRequest": {
            "type": "object",
            "required": [
                "level"
            ],
            "properties": {
                "level": {
                    "type": "string",
                    "enum": [
                        "LK",
                        "GK",
                        "None"
                    ]
                }
            }
        },
        "UpdateExamKindRequest": {
            "type": "object",
            "required": [
                "kind"
            ],
            "properties": {
                "kind": {
                    "type": "string",
                    "enum": [
                        "Written",
                        "Oral",
                        "None"
                    ]
                }
            }
        },
        "GradeValueRequest": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "integer",
                    "minimum": 0,
                    "maximum": 15,
                    "x-nullable": true
                }
            }
        },
        "AverageGrade": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "GRADED",
                        "NOT_COMPUTABLE",
                        "FAILED"
                    ]
                },
                "value": {
                    "type": "number"
                }
            }
        },
        "EvaluationResult": {
            "type": "object",
            "properties": {
                "totalPoints": {
                    "type": "integer"
                },
                "averageGrade": {
                    "$ref": "#/definitions/AverageGrade"
                },
                "validSelection": {
                    "type": "boolean"
                },
                "baseCoursesCount": {
                    "type": "integer"
                },
                "advancedCoursesCount": {
                    "type": "integer"
                },
                "examSubjectsCount": {
                    "type": "integer"
                },
                "lkPoints": {
                    "type": "integer"
                },
                "gkPoints": {
                    "type": "integer"
                },
                "examPoints": {
                    "type": "integer"
                },
                "messages": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
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
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
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
