// Package docs registers the swagger document served at /swagger/*any.
// Regenerate with: swag init -g cmd/server/main.go
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "http://www.example.com/support",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "Application is healthy"},
                    "503": {"description": "Application is unhealthy"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Log in with username and password",
                "responses": {
                    "200": {"description": "Access and refresh tokens"},
                    "400": {"description": "Missing username or password"},
                    "401": {"description": "Invalid credentials"},
                    "403": {"description": "Account is not active"}
                }
            }
        },
        "/api/public/accommodations": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "List all accommodations",
                "responses": {
                    "200": {"description": "Accommodations with public image URLs"}
                }
            }
        },
        "/api/sdaowner/get_accommodations": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "List the caller's accommodations",
                "responses": {
                    "200": {"description": "Accommodations with stored image paths"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/sdaowner/add_accommodation": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["accommodations"],
                "summary": "Create an accommodation",
                "responses": {
                    "201": {"description": "Accommodation created successfully"},
                    "400": {"description": "Missing required fields"}
                }
            }
        },
        "/api/sdaowner/upload_image": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Upload an image",
                "responses": {
                    "201": {"description": "Stored image id and path"},
                    "400": {"description": "No file provided"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:7008",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Accommodation Portal Backend API",
	Description:      "Backend API for the accommodation portal: owner listings with rooms, features, amenities and images, plus account administration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
