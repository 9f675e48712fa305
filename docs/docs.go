// Package docs Code generated by swaggo/swag. DO NOT EDIT
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
        "/auth/login": {
            "post": {
                "description": "Login user with email and password",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Login user",
                "parameters": [
                    {
                        "description": "User login request",
                        "name": "login",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_user_dto.UserLoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_user_dto_UserLoginResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Register new user with email and password",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "auth"
                ],
                "summary": "Register new user",
                "parameters": [
                    {
                        "description": "User register request",
                        "name": "register",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_user_dto.UserRegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_user_dto_UserRegisterResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/bookings/": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get all bookings across users, admin only",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Get all bookings",
                "parameters": [
                    {
                        "minLength": 3,
                        "type": "string",
                        "name": "filter",
                        "in": "query"
                    },
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 1,
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_bookings_dto_GetBookingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Reserve a court slot. The slot must lie within operating hours and clear of recurring blocks and existing bookings",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Create new booking",
                "parameters": [
                    {
                        "description": "Booking create request",
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_bookings_dto.CreateBookingRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/bookings/me": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get the authenticated user's bookings",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Get own bookings",
                "parameters": [
                    {
                        "minLength": 3,
                        "type": "string",
                        "name": "filter",
                        "in": "query"
                    },
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 1,
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_bookings_dto_GetBookingsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/bookings/{id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get booking by ID",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Get booking by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Booking ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_bookings_dto_BookingResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Cancel a booking, freeing its slot",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Cancel booking by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Booking ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Reschedule or edit a booking. The new slot goes through the same availability and conflict checks as a create",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookings"
                ],
                "summary": "Update booking by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Booking ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Booking update request",
                        "name": "booking",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_bookings_dto.UpdateBookingRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/": {
            "get": {
                "description": "Get all courts",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Get all courts",
                "parameters": [
                    {
                        "minLength": 3,
                        "type": "string",
                        "name": "filter",
                        "in": "query"
                    },
                    {
                        "maximum": 100,
                        "minimum": 1,
                        "type": "integer",
                        "name": "limit",
                        "in": "query"
                    },
                    {
                        "minimum": 1,
                        "type": "integer",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_courts_dto_GetCourtsResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Create new court with optional recurring blocks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Create new court",
                "parameters": [
                    {
                        "description": "Court create request",
                        "name": "court",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.CourtCreateRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/{id}": {
            "get": {
                "description": "Get court with its recurring blocks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Get court by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_courts_dto_CourtDetailResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Soft delete court and drop its recurring blocks",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Delete court by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "patch": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Update court by ID",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Update court by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Court update request",
                        "name": "court",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.CourtUpdateRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/{id}/blocks": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Add a weekly recurring block to a court",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Add recurring block to court",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Recurring block request",
                        "name": "block",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.RecurringBlockRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Message"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/courts/{id}/blocks/{block_id}/exceptions": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Add a date to the block's exception list so it does not apply that day",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Suspend a recurring block for one date",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Block ID",
                        "name": "block_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Block exception request",
                        "name": "exception",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.BlockExceptionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Remove a date from the block's exception list",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "courts"
                ],
                "summary": "Reinstate a recurring block for one date",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Block ID",
                        "name": "block_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Block exception request",
                        "name": "exception",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.BlockExceptionRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-string"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/schedule/day": {
            "get": {
                "description": "Merged timeline of bookings and recurring block occurrences for a court on a date",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedule"
                ],
                "summary": "Get a court's schedule for one day",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "court_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Date (YYYY-MM-DD)",
                        "name": "date",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_schedule_dto_DayScheduleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/schedule/week": {
            "get": {
                "description": "Day by day timeline for the seven days starting at start_date",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "schedule"
                ],
                "summary": "Get a court's schedule for one week",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Court ID",
                        "name": "court_id",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "First day of the week (YYYY-MM-DD)",
                        "name": "start_date",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_schedule_dto_WeekScheduleResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        },
        "/users/profile": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Get user profile",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "users"
                ],
                "summary": "Get user profile",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_user_dto_UserProfileResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/github_com_courtbook_backend_internal_delivery_http_response.Error"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_bookings_dto_BookingResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_bookings_dto.BookingResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_bookings_dto_GetBookingsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_bookings_dto.GetBookingsResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_courts_dto_CourtDetailResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.CourtDetailResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_courts_dto_GetCourtsResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.GetCourtsResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_schedule_dto_DayScheduleResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_schedule_dto.DayScheduleResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_schedule_dto_WeekScheduleResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_schedule_dto.WeekScheduleResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_user_dto_UserLoginResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_user_dto.UserLoginResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_user_dto_UserProfileResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_user_dto.UserProfileResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-github_com_courtbook_backend_internal_domains_user_dto_UserRegisterResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_user_dto.UserRegisterResponse"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Data-string": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Error": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_delivery_http_response.Message": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_bookings_dto.BookingResponse": {
            "type": "object",
            "properties": {
                "court_id": {
                    "type": "string"
                },
                "court_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "duration_minutes": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "kind": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "string"
                },
                "paid": {
                    "type": "boolean"
                },
                "participants": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "start_time": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_bookings_dto.CreateBookingRequest": {
            "type": "object",
            "required": [
                "court_id",
                "date",
                "kind",
                "participants",
                "start_time"
            ],
            "properties": {
                "court_id": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "duration_minutes": {
                    "type": "integer",
                    "maximum": 1440,
                    "minimum": 15
                },
                "kind": {
                    "type": "string",
                    "enum": [
                        "single",
                        "double",
                        "training",
                        "personal"
                    ]
                },
                "notes": {
                    "type": "string",
                    "maxLength": 500
                },
                "owner_id": {
                    "type": "string"
                },
                "paid": {
                    "type": "boolean"
                },
                "participants": {
                    "type": "array",
                    "maxItems": 4,
                    "minItems": 1,
                    "items": {
                        "type": "string"
                    }
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_bookings_dto.GetBookingsResponse": {
            "type": "object",
            "properties": {
                "bookings": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_bookings_dto.BookingResponse"
                    }
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_bookings_dto.UpdateBookingRequest": {
            "type": "object",
            "required": [
                "participants"
            ],
            "properties": {
                "date": {
                    "type": "string"
                },
                "duration_minutes": {
                    "type": "integer",
                    "maximum": 1440,
                    "minimum": 15
                },
                "kind": {
                    "type": "string",
                    "enum": [
                        "single",
                        "double",
                        "training",
                        "personal"
                    ]
                },
                "notes": {
                    "type": "string",
                    "maxLength": 500
                },
                "owner_id": {
                    "type": "string"
                },
                "paid": {
                    "type": "boolean"
                },
                "participants": {
                    "type": "array",
                    "maxItems": 4,
                    "minItems": 1,
                    "items": {
                        "type": "string"
                    }
                },
                "start_time": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.BlockExceptionRequest": {
            "type": "object",
            "required": [
                "date"
            ],
            "properties": {
                "date": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.CourtCreateRequest": {
            "type": "object",
            "required": [
                "close_time",
                "name",
                "open_time",
                "surface_type"
            ],
            "properties": {
                "blocks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.RecurringBlockRequest"
                    }
                },
                "close_time": {
                    "type": "string"
                },
                "default_duration_minutes": {
                    "type": "integer",
                    "maximum": 1440,
                    "minimum": 15
                },
                "name": {
                    "type": "string",
                    "maxLength": 255,
                    "minLength": 3
                },
                "open_time": {
                    "type": "string"
                },
                "surface_type": {
                    "type": "string",
                    "enum": [
                        "asphalt",
                        "hard"
                    ]
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.CourtDetailResponse": {
            "type": "object",
            "properties": {
                "blocks": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.RecurringBlockResponse"
                    }
                },
                "close_time": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "default_duration_minutes": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "open_time": {
                    "type": "string"
                },
                "surface_type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.CourtResponse": {
            "type": "object",
            "properties": {
                "close_time": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "default_duration_minutes": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "open_time": {
                    "type": "string"
                },
                "surface_type": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.CourtUpdateRequest": {
            "type": "object",
            "properties": {
                "close_time": {
                    "type": "string"
                },
                "default_duration_minutes": {
                    "type": "integer",
                    "maximum": 1440,
                    "minimum": 15
                },
                "name": {
                    "type": "string",
                    "maxLength": 255,
                    "minLength": 3
                },
                "open_time": {
                    "type": "string"
                },
                "surface_type": {
                    "type": "string",
                    "enum": [
                        "asphalt",
                        "hard"
                    ]
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.GetCourtsResponse": {
            "type": "object",
            "properties": {
                "courts": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_courts_dto.CourtResponse"
                    }
                },
                "total_items": {
                    "type": "integer"
                },
                "total_pages": {
                    "type": "integer"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.RecurringBlockRequest": {
            "type": "object",
            "required": [
                "duration_minutes",
                "purpose",
                "start_time",
                "weekdays"
            ],
            "properties": {
                "dates_not_applied": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "duration_minutes": {
                    "type": "integer",
                    "maximum": 1440,
                    "minimum": 15
                },
                "note": {
                    "type": "string",
                    "maxLength": 255
                },
                "purpose": {
                    "type": "string",
                    "enum": [
                        "training",
                        "other"
                    ]
                },
                "start_time": {
                    "type": "string"
                },
                "weekdays": {
                    "type": "array",
                    "maxItems": 7,
                    "minItems": 1,
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_courts_dto.RecurringBlockResponse": {
            "type": "object",
            "properties": {
                "cadence": {
                    "type": "string"
                },
                "court_id": {
                    "type": "string"
                },
                "dates_not_applied": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "duration_minutes": {
                    "type": "integer"
                },
                "id": {
                    "type": "string"
                },
                "note": {
                    "type": "string"
                },
                "position": {
                    "type": "integer"
                },
                "purpose": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                },
                "weekdays": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_schedule_dto.DayScheduleResponse": {
            "type": "object",
            "properties": {
                "close_time": {
                    "type": "string"
                },
                "court_id": {
                    "type": "string"
                },
                "court_name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "entries": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_schedule_dto.ScheduleEntry"
                    }
                },
                "open_time": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_schedule_dto.ScheduleEntry": {
            "type": "object",
            "properties": {
                "duration_minutes": {
                    "type": "integer"
                },
                "end_time": {
                    "type": "string"
                },
                "label": {
                    "type": "string"
                },
                "owner_id": {
                    "type": "string"
                },
                "ref_id": {
                    "type": "string"
                },
                "start_time": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_schedule_dto.WeekScheduleResponse": {
            "type": "object",
            "properties": {
                "court_id": {
                    "type": "string"
                },
                "court_name": {
                    "type": "string"
                },
                "days": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/github_com_courtbook_backend_internal_domains_schedule_dto.DayScheduleResponse"
                    }
                },
                "start_date": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_user_dto.UserLoginRequest": {
            "type": "object",
            "required": [
                "email",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "string@gmail.com"
                },
                "password": {
                    "type": "string",
                    "minLength": 8
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_user_dto.UserLoginResponse": {
            "type": "object",
            "properties": {
                "access_token": {
                    "type": "string"
                },
                "refresh_token": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_user_dto.UserProfileResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "level": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_user_dto.UserRegisterRequest": {
            "type": "object",
            "required": [
                "email",
                "name",
                "password"
            ],
            "properties": {
                "email": {
                    "type": "string",
                    "example": "string@gmail.com"
                },
                "name": {
                    "type": "string"
                },
                "password": {
                    "type": "string",
                    "minLength": 8
                }
            }
        },
        "github_com_courtbook_backend_internal_domains_user_dto.UserRegisterResponse": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                }
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
	Version:          "",
	Host:             "",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "courtbook API",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
