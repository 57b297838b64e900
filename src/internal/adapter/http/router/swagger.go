package router

import (
	"fmt"
	"net/http"
)

func registerSwaggerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})

	mux.HandleFunc("/swagger/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, swaggerHTML, "/swagger/openapi.json")
	})

	mux.HandleFunc("/swagger/openapi.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(openAPI))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8" />
  <title>Account Manager API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = function() {
      window.ui = SwaggerUIBundle({
        url: "%s",
        dom_id: "#swagger-ui"
      });
    };
  </script>
</body>
</html>`

const openAPI = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Account Manager API",
    "version": "1.0.0"
  },
  "paths": {
    "/clients": {
      "post": {
        "summary": "Create client",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["taxId", "name", "birthDate"],
                "properties": {
                  "taxId": {"type": "string", "example": "619.874.460-46"},
                  "name": {"type": "string"},
                  "birthDate": {"type": "string", "format": "date"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Client created"},
          "400": {"description": "Validation failed"},
          "409": {"description": "Tax id already registered"}
        }
      }
    },
    "/accounts": {
      "post": {
        "summary": "Create account",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["clientTaxId", "accountType"],
                "properties": {
                  "clientTaxId": {"type": "string"},
                  "accountType": {"type": "string", "example": "CHECKING"}
                }
              }
            }
          }
        },
        "responses": {
          "201": {"description": "Account created"},
          "400": {"description": "Validation failed"},
          "404": {"description": "Client does not exist"}
        }
      }
    },
    "/accounts/balance": {
      "get": {
        "summary": "Get account balance",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "integer", "format": "int64"}}
        ],
        "responses": {
          "200": {"description": "Balance projection"},
          "400": {"description": "Validation failed"},
          "404": {"description": "Account not found"}
        }
      }
    },
    "/transfers": {
      "post": {
        "summary": "Transfer between accounts",
        "security": [{"BasicAuth": []}],
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {
                "type": "object",
                "required": ["originAccountNumber", "destinationAccountNumber", "amount", "type"],
                "properties": {
                  "originAccountNumber": {"type": "integer", "format": "int64"},
                  "destinationAccountNumber": {"type": "integer", "format": "int64"},
                  "amount": {"type": "string", "example": "10.00"},
                  "type": {"type": "string", "example": "TRANSFERENCIA"}
                }
              }
            }
          }
        },
        "responses": {
          "200": {"description": "Transfer completed"},
          "400": {"description": "Validation failed"}
        }
      }
    },
    "/transfers/history": {
      "get": {
        "summary": "Paginated movement history",
        "security": [{"BasicAuth": []}],
        "parameters": [
          {"name": "accountNumber", "in": "query", "required": true, "schema": {"type": "string"}},
          {"name": "startDate", "in": "query", "schema": {"type": "string", "format": "date"}},
          {"name": "endDate", "in": "query", "schema": {"type": "string", "format": "date"}},
          {"name": "page", "in": "query", "schema": {"type": "integer"}},
          {"name": "size", "in": "query", "schema": {"type": "integer"}},
          {"name": "sort", "in": "query", "schema": {"type": "string", "example": "dateTime,desc"}}
        ],
        "responses": {
          "200": {"description": "Movement page"},
          "400": {"description": "Validation failed"},
          "404": {"description": "No movements found"}
        }
      }
    }
  },
  "components": {
    "securitySchemes": {
      "BasicAuth": {"type": "http", "scheme": "basic"}
    }
  }
}`
