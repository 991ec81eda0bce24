package models

import "github.com/golang-jwt/jwt/v5"

// WorksheetClaims is the JWT payload granting access to a single worksheet.
type WorksheetClaims struct {
	WorksheetID string `json:"worksheet_id"`
	jwt.RegisteredClaims
}
