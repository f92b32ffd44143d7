package core

import "github.com/healthbuddy-dev/healthbuddy/pkg/models"

// DefaultKnowledgeBase returns the built-in message and advice
// catalog. Every key here can be overridden by a non-empty entry in
// the external override source.
func DefaultKnowledgeBase() map[string]models.KBValue {
	return map[string]models.KBValue{
		// Headline messages, one per decision path.
		"emergency_msg": {
			Text: "This may be an emergency. Call 108 immediately. Do not delay.",
		},
		"urgent_msg": {
			Text: "These symptoms should be evaluated today. Visit a clinic as soon as you can.",
		},
		"moderate_msg": {
			Text: "Consult a clinician within 24-48 hours (telemedicine or clinic).",
		},
		"selfcare_msg": {
			Text: "This looks manageable at home. Monitor your symptoms and rest.",
		},
		"fever_3d_msg": {
			Text: "Fever for 3 or more days may need evaluation. Consult telemedicine or a clinic within 24h.",
		},
		"pediatric_fever3_msg": {
			Text: "Fever lasting 3 or more days in a young child needs review today. Visit a pediatric clinic.",
		},
		"fallback_msg": {
			Text: "Symptoms unclear. For safety, consider contacting a clinician or visiting a clinic.",
		},

		// Self-care suggestions.
		"selfcare_headache": {
			Bullets: []string{
				"Rest in a quiet, dark room.",
				"Hydrate with water or oral rehydration solution.",
				"Limit screens; consider paracetamol as per label if needed.",
				"Seek care if headache becomes severe or there is confusion or weakness.",
			},
		},
		"selfcare_cough": {
			Bullets: []string{
				"Sip warm fluids with honey/lemon (if not allergic).",
				"Try steam inhalation for congestion.",
				"Avoid smoke/irritants; rest well.",
				"Seek care if breathing worsens, high fever appears, or cough lasts >2 weeks.",
			},
		},

		// Moderate suggestions.
		"moderate_general": {
			Bullets: []string{
				"Consult a clinician within 24-48 hours (telemedicine or clinic).",
				"Continue fluids and rest; track temperature and symptoms.",
				"Prepare a brief symptom timeline (onset, duration, severity) for the visit.",
			},
		},
		"moderate_fever3": {
			Bullets: []string{
				"Arrange a telemedicine/clinic visit within 24 hours.",
				"Stay hydrated; use temperature control (tepid sponging, light clothing).",
				"Record temperatures and new symptoms to share with the clinician.",
			},
		},

		// Urgent suggestions.
		"urgent_general": {
			Bullets: []string{
				"Visit a clinic today for evaluation.",
				"Avoid heavy exertion; arrange transport if feeling weak/dizzy.",
				"Bring a medication list and known conditions.",
			},
		},
		"urgent_pediatric_fever3": {
			Bullets: []string{
				"Take the child to a pediatric clinic today.",
				"Offer frequent small fluids; check temperature regularly.",
				"Watch for red flags (lethargy, poor feeding, breathing difficulty).",
			},
		},

		// Emergency suggestions.
		"emergency_general": {
			Bullets: []string{
				"Call 108 now or go to the nearest emergency department.",
				"Do not drive yourself; have someone accompany you if possible.",
				"Bring ID and any current medications.",
			},
		},
	}
}
