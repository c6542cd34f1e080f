package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Straatmeubilair Werkorder API",
        "description": "Work-order management for municipal street furniture",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "WorkOrders", "description": "Work-order lifecycle"},
        {"name": "Exports", "description": "CSV and PDF downloads"}
    ],
    "paths": {
        "/requests": {
            "get": {
                "tags": ["WorkOrders"],
                "summary": "List work orders, newest first",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/WorkOrder"}}}
                }
            },
            "post": {
                "tags": ["WorkOrders"],
                "summary": "Submit a work order",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateWorkOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WorkOrder"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/requests/{id}": {
            "get": {
                "tags": ["WorkOrders"],
                "summary": "Get one work order",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WorkOrder"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/work-orders": {
            "get": {
                "tags": ["WorkOrders"],
                "summary": "List work orders (staff surface)",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/WorkOrder"}}}
                }
            }
        },
        "/work-orders/{id}": {
            "get": {
                "tags": ["WorkOrders"],
                "summary": "Get one work order",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WorkOrder"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            },
            "patch": {
                "tags": ["WorkOrders"],
                "summary": "Partially update a work order",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateWorkOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WorkOrder"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/work-orders/{id}/logs": {
            "get": {
                "tags": ["WorkOrders"],
                "summary": "Status history, newest first",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/WorkOrderLog"}}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/work-orders/stats": {
            "get": {
                "tags": ["WorkOrders"],
                "summary": "Aggregate counts for the dashboard",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/WorkOrderStats"}}
                }
            }
        },
        "/work-orders/export": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download all work orders as CSV",
                "produces": ["text/csv"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/work-orders/{id}/pdf": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a printable work sheet",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "WorkOrder": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "orderNumber": {"type": "string"},
                "requestorName": {"type": "string"},
                "requestorPhone": {"type": "string"},
                "requestorEmail": {"type": "string"},
                "municipality": {"type": "string"},
                "executionContactName": {"type": "string"},
                "executionContactPhone": {"type": "string"},
                "executionContactEmail": {"type": "string"},
                "status": {"type": "string", "enum": ["PENDING", "IN_PROGRESS", "COMPLETED", "CANCELLED"]},
                "actionType": {"type": "string", "enum": ["plaatsen", "verwijderen", "verplaatsen", "ophogen"]},
                "furnitureType": {"type": "string", "enum": ["abri", "mupi", "driehoeksbord", "reclamezuil"]},
                "abriFormat": {"type": "string"},
                "objectNumber": {"type": "string"},
                "desiredDate": {"type": "string", "format": "date"},
                "locationSketch": {"type": "string"},
                "removalCity": {"type": "string"},
                "removalStreet": {"type": "string"},
                "removalPostcode": {"type": "string"},
                "installationCity": {"type": "string"},
                "installationXCoord": {"type": "string"},
                "installationYCoord": {"type": "string"},
                "installationAddress": {"type": "string"},
                "installationPostcode": {"type": "string"},
                "installationStopName": {"type": "string"},
                "groundRemovalPaving": {"type": "boolean"},
                "groundRemovalExcavation": {"type": "boolean"},
                "groundRemovalFilling": {"type": "boolean"},
                "groundRemovalRepaving": {"type": "boolean"},
                "groundRemovalMaterials": {"type": "boolean"},
                "groundInstallationExcavation": {"type": "boolean"},
                "groundInstallationFilling": {"type": "boolean"},
                "groundInstallationRepaving": {"type": "boolean"},
                "groundInstallationMaterials": {"type": "boolean"},
                "groundInstallationExcessSoilAddress": {"type": "string"},
                "electricalDisconnect": {"type": "boolean"},
                "electricalConnect": {"type": "boolean"},
                "billingCity": {"type": "string"},
                "billingAddress": {"type": "string"},
                "billingPostcode": {"type": "string"},
                "billingDepartment": {"type": "string"},
                "billingAttention": {"type": "string"},
                "billingReference": {"type": "string"},
                "additionalNotes": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "WorkOrderLog": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "workOrderId": {"type": "integer"},
                "status": {"type": "string"},
                "note": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "WorkOrderStats": {
            "type": "object",
            "properties": {
                "total": {"type": "integer"},
                "byStatus": {"type": "array", "items": {"type": "object"}},
                "byMunicipality": {"type": "array", "items": {"type": "object"}}
            }
        },
        "CreateWorkOrderRequest": {
            "type": "object",
            "required": ["requestorName", "requestorPhone", "requestorEmail", "municipality", "executionContactName", "executionContactPhone", "executionContactEmail", "actionType", "furnitureType", "desiredDate", "billingCity", "billingAddress", "billingPostcode"],
            "properties": {
                "requestorName": {"type": "string"},
                "requestorPhone": {"type": "string"},
                "requestorEmail": {"type": "string"},
                "municipality": {"type": "string"},
                "executionContactName": {"type": "string"},
                "executionContactPhone": {"type": "string"},
                "executionContactEmail": {"type": "string"},
                "actionType": {"type": "string"},
                "furnitureType": {"type": "string"},
                "desiredDate": {"type": "string", "format": "date"},
                "billingCity": {"type": "string"},
                "billingAddress": {"type": "string"},
                "billingPostcode": {"type": "string"}
            }
        },
        "UpdateWorkOrderRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "statusNote": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"}
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
