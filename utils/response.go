package utils

import (
	"errors"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondWithValidationError answers a failed binding with a per-field error
// map under "errors" when field detail is available, so clients can surface
// messages next to the offending inputs. Malformed JSON and other
// non-validator failures degrade to a single "error" message.
func RespondWithValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[snakeCase(fe.Field())] = validationMessage(fe)
		}
		c.JSON(400, gin.H{"errors": fields})
		return
	}
	RespondWithError(c, 400, "Invalid input: "+err.Error())
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Ce champ est obligatoire."
	case "email":
		return "Adresse email invalide."
	case "oneof":
		return "Valeur non autorisée."
	case "min", "gt":
		return "Valeur trop petite."
	case "max":
		return "Valeur trop grande."
	default:
		return "Valeur invalide."
	}
}

// snakeCase maps a Go field name to its JSON name. Acronym runs stay
// together: TarifBase -> tarif_base, MontantHT -> montant_ht.
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && !unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && !unicode.IsUpper(runes[i+1])
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
