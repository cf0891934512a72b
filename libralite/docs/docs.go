// Package docs registers the LibraLite OpenAPI document with swag.
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
    "securityDefinitions": {
        "AdminKey": {"type": "apiKey", "name": "X-Admin-Key", "in": "header"},
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/manage/health": {
            "get": {"summary": "liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/api/v1/members/apply": {
            "post": {
                "tags": ["members"],
                "summary": "submit a membership application",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/model.ApplicationRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Application"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errs.ValidationErrorResponse"}}
                }
            }
        },
        "/api/v1/members/applications/{id}": {
            "get": {
                "tags": ["members"],
                "summary": "application status",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Application"}}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/members/login": {
            "post": {
                "tags": ["members"],
                "summary": "authenticate a member by card number and PIN",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/model.LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.LoginResponse"}}, "401": {"description": "Unauthorized"}, "429": {"description": "Too Many Requests"}}
            }
        },
        "/api/v1/members/me": {
            "get": {
                "tags": ["members"],
                "summary": "member behind the bearer token",
                "security": [{"Bearer": []}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Member"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/members/{id}/account": {
            "get": {
                "tags": ["members"],
                "summary": "open loans, pending fines and the outstanding total",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.MemberAccount"}}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/items": {
            "get": {
                "tags": ["items"],
                "summary": "search the catalog",
                "parameters": [
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "itemType", "type": "string", "enum": ["book", "dvd", "magazine", "other"]},
                    {"in": "query", "name": "available", "type": "boolean"},
                    {"in": "query", "name": "page", "type": "integer"},
                    {"in": "query", "name": "size", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ListItems"}}}
            },
            "post": {
                "tags": ["items"],
                "summary": "create an item",
                "security": [{"AdminKey": []}],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/model.CreateItemRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Item"}}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/items/{id}/return": {
            "post": {
                "tags": ["items"],
                "summary": "return an item and pass it to the next hold",
                "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.ReturnResult"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/loans/checkout": {
            "post": {
                "tags": ["loans"],
                "summary": "check an item out to a member",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/model.CheckoutRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Loan"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/loans/checkin": {
            "post": {
                "tags": ["loans"],
                "summary": "check a loan back in and assess late fees",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/model.CheckinRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/holds": {
            "post": {
                "tags": ["holds"],
                "summary": "join the hold queue of an unavailable item",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/model.PlaceHoldRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Hold"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/hold-shelf": {
            "post": {
                "tags": ["hold-shelf"],
                "summary": "move the next hold of an item to the hold shelf",
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/model.PromoteRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/model.HoldShelfEntry"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/admin/stats": {
            "get": {
                "tags": ["admin"],
                "summary": "daily checkouts, popular items and new members",
                "security": [{"AdminKey": []}],
                "parameters": [{"in": "query", "name": "days", "type": "integer"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Stats"}}}
            }
        }
    },
    "definitions": {
        "errs.ValidationErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "errors": {"type": "object", "additionalProperties": {"type": "string"}}}
        },
        "model.ApplicationRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "address", "phone", "pin"],
            "properties": {
                "firstName": {"type": "string"}, "lastName": {"type": "string"}, "email": {"type": "string"},
                "address": {"type": "string"}, "phone": {"type": "string"}, "pin": {"type": "string", "minLength": 4, "maxLength": 6}
            }
        },
        "model.Application": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}, "email": {"type": "string"},
                "address": {"type": "string"}, "phone": {"type": "string"}, "status": {"type": "string", "enum": ["pending", "approved", "rejected"]},
                "libraryCardNumber": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "model.LoginRequest": {
            "type": "object",
            "required": ["libraryCardNumber", "pin"],
            "properties": {"libraryCardNumber": {"type": "string"}, "pin": {"type": "string"}}
        },
        "model.Member": {
            "type": "object",
            "properties": {
                "libraryCardNumber": {"type": "string"}, "firstName": {"type": "string"}, "lastName": {"type": "string"}, "email": {"type": "string"},
                "address": {"type": "string"}, "phone": {"type": "string"}, "status": {"type": "string"}, "applicationId": {"type": "string"},
                "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "model.LoginResponse": {
            "type": "object",
            "properties": {"token": {"type": "string"}, "member": {"$ref": "#/definitions/model.Member"}}
        },
        "model.Item": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "title": {"type": "string"}, "author": {"type": "string"}, "isbn": {"type": "string"},
                "itemType": {"type": "string", "enum": ["book", "dvd", "magazine", "other"]}, "isAvailable": {"type": "boolean"},
                "onHoldShelf": {"type": "boolean"}, "holdShelfFor": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}
            }
        },
        "model.CreateItemRequest": {
            "type": "object",
            "required": ["title", "author"],
            "properties": {"title": {"type": "string"}, "author": {"type": "string"}, "isbn": {"type": "string"}, "itemType": {"type": "string"}}
        },
        "model.ListItems": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"}, "pageSize": {"type": "integer"}, "totalElements": {"type": "integer"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/model.Item"}}
            }
        },
        "model.Loan": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "memberId": {"type": "string"}, "itemId": {"type": "string"}, "checkoutDate": {"type": "string"},
                "dueDate": {"type": "string"}, "returnDate": {"type": "string"}, "status": {"type": "string", "enum": ["checked-out", "overdue", "returned"]}
            }
        },
        "model.Fine": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "loanId": {"type": "string"}, "memberId": {"type": "string"}, "amount": {"type": "string"}, "status": {"type": "string"}}
        },
        "model.CheckoutRequest": {
            "type": "object",
            "required": ["memberId", "itemId"],
            "properties": {"memberId": {"type": "string"}, "itemId": {"type": "string"}}
        },
        "model.CheckinRequest": {
            "type": "object",
            "required": ["loanId", "itemId"],
            "properties": {"loanId": {"type": "string"}, "itemId": {"type": "string"}}
        },
        "model.ReturnResult": {
            "type": "object",
            "properties": {
                "loan": {"$ref": "#/definitions/model.Loan"}, "fine": {"$ref": "#/definitions/model.Fine"},
                "holdShelfEntry": {"$ref": "#/definitions/model.HoldShelfEntry"}
            }
        },
        "model.MemberAccount": {
            "type": "object",
            "properties": {
                "libraryCardNumber": {"type": "string"},
                "loans": {"type": "array", "items": {"$ref": "#/definitions/model.Loan"}},
                "fines": {"type": "array", "items": {"$ref": "#/definitions/model.Fine"}},
                "totalOutstanding": {"type": "string"}
            }
        },
        "model.PlaceHoldRequest": {
            "type": "object",
            "required": ["itemId", "libraryCardNumber", "memberName", "memberEmail"],
            "properties": {"itemId": {"type": "string"}, "libraryCardNumber": {"type": "string"}, "memberName": {"type": "string"}, "memberEmail": {"type": "string"}}
        },
        "model.Hold": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "itemId": {"type": "string"}, "libraryCardNumber": {"type": "string"},
                "status": {"type": "string", "enum": ["active", "ready", "fulfilled", "cancelled", "expired"]},
                "position": {"type": "integer"}, "placedAt": {"type": "string"}, "expiresAt": {"type": "string"}
            }
        },
        "model.PromoteRequest": {
            "type": "object",
            "required": ["itemId"],
            "properties": {"itemId": {"type": "string"}}
        },
        "model.HoldShelfEntry": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}, "holdId": {"type": "string"}, "itemId": {"type": "string"}, "libraryCardNumber": {"type": "string"},
                "memberName": {"type": "string"}, "itemTitle": {"type": "string"}, "placedOnShelfAt": {"type": "string"},
                "expiresAt": {"type": "string"}, "notificationSent": {"type": "boolean"}
            }
        },
        "model.Stats": {
            "type": "object",
            "properties": {
                "days": {"type": "integer"},
                "dailyCheckouts": {"type": "array", "items": {"type": "object", "properties": {"date": {"type": "string"}, "count": {"type": "integer"}}}},
                "popularItems": {"type": "array", "items": {"type": "object", "properties": {"itemId": {"type": "string"}, "title": {"type": "string"}, "checkouts": {"type": "integer"}}}},
                "newMembers": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "LibraLite API",
	Description:      "Library membership, circulation and hold queue service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
