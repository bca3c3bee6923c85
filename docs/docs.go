// Package docs registers the OpenAPI description served at /swagger/doc.json.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["system"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}},
        "/auth/status": {"get": {"tags": ["auth"], "summary": "Whether the administrator account exists", "responses": {"200": {"description": "OK"}}}},
        "/auth/register": {"post": {"tags": ["auth"], "summary": "Register the single administrator",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/registerRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}}, "401": {"description": "wrong registration key"}, "403": {"description": "registration disabled"}, "409": {"description": "already registered"}}}},
        "/auth/sign-in": {"post": {"tags": ["auth"], "summary": "Sign in as administrator",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/signInRequest"}}],
            "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/tokenResponse"}}, "401": {"description": "invalid credentials"}}}},
        "/api/v1/catalog": {"get": {"tags": ["catalog"], "summary": "Job types with duration and cost", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/availability/days": {"get": {"tags": ["availability"], "summary": "Upcoming weekdays with occupancy",
            "parameters": [{"in": "query", "name": "from", "type": "string"}, {"in": "query", "name": "count", "type": "integer"}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "bad query"}}}},
        "/api/v1/availability/slots": {"get": {"tags": ["availability"], "summary": "Free slots on a date",
            "parameters": [{"in": "query", "name": "date", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "invalid date"}}}},
        "/api/v1/booking/sessions": {"post": {"tags": ["booking"], "summary": "Start a booking wizard", "responses": {"201": {"description": "Created"}}}},
        "/api/v1/booking/sessions/{id}": {
            "get": {"tags": ["booking"], "summary": "Current step, draft and step options", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK"}, "404": {"description": "unknown session"}}},
            "delete": {"tags": ["booking"], "summary": "Abandon a booking wizard", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"204": {"description": "No Content"}}}},
        "/api/v1/booking/sessions/{id}/info": {"post": {"tags": ["booking"], "summary": "Client details and job selection (step 1)",
            "parameters": [{"$ref": "#/parameters/sessionID"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/infoRequest"}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "validation error"}}}},
        "/api/v1/booking/sessions/{id}/day": {"post": {"tags": ["booking"], "summary": "Pick a day (step 2)",
            "parameters": [{"$ref": "#/parameters/sessionID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"date": {"type": "string", "example": "2026-10-16"}}}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "validation error"}}}},
        "/api/v1/booking/sessions/{id}/slots": {"post": {"tags": ["booking"], "summary": "Pick one or both time slots (step 3)",
            "parameters": [{"$ref": "#/parameters/sessionID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"time_slots": {"type": "array", "items": {"type": "string"}}}}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "validation error"}}}},
        "/api/v1/booking/sessions/{id}/review": {"get": {"tags": ["booking"], "summary": "Summary, capacity check and cost estimate (step 4)", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/booking/sessions/{id}/confirm": {"post": {"tags": ["booking"], "summary": "Book the appointment", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"201": {"description": "Created"}, "400": {"description": "validation error"}}}},
        "/api/v1/booking/sessions/{id}/back": {"post": {"tags": ["booking"], "summary": "Return to an earlier step, keeping the draft",
            "parameters": [{"$ref": "#/parameters/sessionID"}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"step": {"type": "integer"}}}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "invalid step"}}}},
        "/api/v1/booking/sessions/{id}/reset": {"post": {"tags": ["booking"], "summary": "Return to the start and discard the draft", "parameters": [{"$ref": "#/parameters/sessionID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/admin/appointments": {"get": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Booked appointments, optionally one Monday-Sunday week",
            "parameters": [{"in": "query", "name": "week", "type": "string"}],
            "responses": {"200": {"description": "OK"}, "401": {"description": "unauthorized"}}}},
        "/api/v1/admin/appointments/{id}/status": {"patch": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Set an appointment's status",
            "parameters": [{"in": "path", "name": "id", "type": "integer", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"status": {"type": "string", "enum": ["pending", "completed", "not_completed"]}}}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "invalid status"}, "404": {"description": "unknown appointment"}}}},
        "/api/v1/admin/costs": {"put": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Edit job type costs",
            "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object", "properties": {"costs": {"type": "object", "additionalProperties": {"type": "integer"}}}}}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "unknown job or negative cost"}}}},
        "/api/v1/admin/rain-day": {"post": {"tags": ["admin"], "security": [{"BearerAuth": []}], "summary": "Move every pending appointment to the next weekday", "responses": {"200": {"description": "OK"}}}}
    },
    "parameters": {
        "sessionID": {"in": "path", "name": "id", "type": "string", "required": true}
    },
    "definitions": {
        "registerRequest": {"type": "object", "required": ["email", "password", "registration_key"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}, "registration_key": {"type": "string"}}},
        "signInRequest": {"type": "object", "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "tokenResponse": {"type": "object", "properties": {"token": {"type": "string"}}},
        "infoRequest": {"type": "object",
            "properties": {"client_name": {"type": "string"}, "address": {"type": "string"}, "phone": {"type": "string"},
                "jobs": {"type": "array", "items": {"type": "string"}}, "quantity": {"type": "integer"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Home Service Booking API",
	Description:      "Weekday evening appointment booking with an administrator back office.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
