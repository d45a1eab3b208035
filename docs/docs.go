// Package docs registra el documento OpenAPI de la API para swag.
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
        "/api/boletas": {
            "post": {
                "description": "Dibuja la boleta PDF de la acción, la guarda en el bucket y devuelve una URL firmada (10 min).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "boletas"
                ],
                "summary": "Generar boleta",
                "parameters": [
                    {
                        "description": "grupo, usuario {nombre, id|email}, accion {nombre, precio, pagado}",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateBoletaRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.GenerateBoletaResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.FailureResponse"
                        }
                    }
                }
            }
        },
        "/api/boletas/url": {
            "post": {
                "description": "Verifica que la boleta exista y emite una URL firmada nueva (1 hora).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "boletas"
                ],
                "summary": "Regenerar URL de descarga",
                "parameters": [
                    {
                        "description": "fileKey devuelto al generar",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.RefreshURLRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.RefreshURLResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/dto.FailureResponse"
                        }
                    }
                }
            }
        },
        "/api/boletas/descarga": {
            "get": {
                "produces": [
                    "application/pdf"
                ],
                "tags": [
                    "boletas"
                ],
                "summary": "Descargar boleta (almacenamiento local)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "token firmado de la URL de descarga",
                        "name": "token",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK"
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/dto.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Estado del servicio",
                "responses": {
                    "200": {
                        "description": "OK"
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ActionRequest": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "precio": {
                    "type": "number"
                },
                "pagado": {
                    "type": "number"
                }
            }
        },
        "dto.UserRequest": {
            "type": "object",
            "properties": {
                "nombre": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                }
            }
        },
        "dto.GenerateBoletaRequest": {
            "type": "object",
            "properties": {
                "grupo": {
                    "type": "string"
                },
                "usuario": {
                    "$ref": "#/definitions/dto.UserRequest"
                },
                "accion": {
                    "$ref": "#/definitions/dto.ActionRequest"
                }
            }
        },
        "dto.GenerateBoletaResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "urlDescarga": {
                    "type": "string"
                },
                "bucket": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                }
            }
        },
        "dto.RefreshURLRequest": {
            "type": "object",
            "properties": {
                "fileKey": {
                    "type": "string"
                }
            }
        },
        "dto.RefreshURLResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "urlDescarga": {
                    "type": "string"
                },
                "key": {
                    "type": "string"
                }
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.FailureResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo metadatos editables en tiempo de ejecución.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Boletas API",
	Description:      "Generación de boletas PDF y URLs de descarga firmadas.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
