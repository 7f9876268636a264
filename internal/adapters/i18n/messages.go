// internal/adapters/i18n/messages.go
package i18n

import "golang.org/x/text/language"

var messages = map[language.Tag]map[string]string{
	language.English: {
		"previous_audit_still_open":           "The previous audit of this device is still open.",
		"offer_detach_forbidden":              "An item cannot be removed from a closed or validated buyback offer.",
		"offer_attach_forbidden":              "An item cannot be added to a closed or validated buyback offer.",
		"module_disabled":                     "The buyback module is not enabled for this account.",
		"empty_validated_collection":          "A validated buyback offer must contain at least one item.",
		"shipping_address_required":           "A shipping address is required to validate the buyback offer.",
		"device_required_for_repair_transfer": "Only audit items linked to a device can be transferred to repair.",
		"audit_request_required":              "An audit request is required.",
		"audit_request_immutable":             "The audit request of an audit item cannot be changed.",
		"no_audit_selected":                   "Select at least one audit item.",
		"invalid_field":                       "The request contains an invalid value.",
		"invalid_field_field":                 "The value of %s is invalid.",
		keyNotFound:                           "The requested resource does not exist.",
		keyInternal:                           "An unexpected error occurred.",
	},
	language.French: {
		"previous_audit_still_open":           "Le précédent audit de cet appareil est toujours ouvert.",
		"offer_detach_forbidden":              "Un article ne peut pas être retiré d'une offre de rachat clôturée ou validée.",
		"offer_attach_forbidden":              "Un article ne peut pas être ajouté à une offre de rachat clôturée ou validée.",
		"module_disabled":                     "Le module de rachat n'est pas activé pour ce compte.",
		"empty_validated_collection":          "Une offre de rachat validée doit contenir au moins un article.",
		"shipping_address_required":           "Une adresse de livraison est requise pour valider l'offre de rachat.",
		"device_required_for_repair_transfer": "Seuls les audits liés à un appareil peuvent être envoyés en réparation.",
		"audit_request_required":              "Une demande d'audit est requise.",
		"audit_request_immutable":             "La demande d'audit d'un audit ne peut pas être modifiée.",
		"no_audit_selected":                   "Sélectionnez au moins un audit.",
		"invalid_field":                       "La requête contient une valeur invalide.",
		"invalid_field_field":                 "La valeur de %s est invalide.",
		keyNotFound:                           "La ressource demandée n'existe pas.",
		keyInternal:                           "Une erreur inattendue est survenue.",
	},
}
