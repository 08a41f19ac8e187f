// Package docs holds the swagger spec served at /swagger/*.
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
        "/api/v1/chat/query": {
            "post": {
                "description": "Matches the question against the knowledge base and falls back to the AI assistant when no confident answer exists",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Answer a support question",
                "parameters": [
                    {
                        "description": "Question and optional tone (formal, casual or plain)",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.ChatQueryRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/dto.ChatQueryResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        },
        "/api/v1/faq": {
            "get": {
                "description": "Returns the FAQ knowledge items shown below the chat, optionally filtered by category",
                "produces": ["application/json"],
                "tags": ["faq"],
                "summary": "List FAQ entries",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Category label",
                        "name": "category",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.FAQItemResponse"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"type": "object", "additionalProperties": {"type": "string"}}
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.ChatQueryRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "tone": {"type": "string"}
            }
        },
        "dto.ChatQueryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "query": {"type": "string"},
                "tone": {"type": "string"},
                "response": {"type": "string"},
                "source": {"type": "string"},
                "score": {"type": "integer"},
                "related_guides": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/dto.RelatedGuideResponse"}
                },
                "follow_up_questions": {"type": "array", "items": {"type": "string"}},
                "related_questions": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.RelatedGuideResponse": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "url": {"type": "string"},
                "icon": {"type": "string"}
            }
        },
        "dto.FAQItemResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category": {"type": "string"},
                "title": {"type": "string"},
                "answer": {"type": "string"},
                "related_questions": {"type": "array", "items": {"type": "string"}}
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
	Title:            "Billy Chat API",
	Description:      "Korean e-invoicing FAQ chatbot with knowledge-base matching and AI fallback",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
