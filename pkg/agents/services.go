package agents

// serviceCatalog is the fixed list of services offered by the clinic,
// in presentation order.
var serviceCatalog = []string{
	"General Checkup",
	"Emergency Services",
	"COVID-19 Information",
	"Medicine Reminders",
	"Dietary Advice",
	"Mental Health Support",
}

// serviceAgents maps a registration service key to the agent that takes
// over the conversation after registration.
var serviceAgents = map[string]string{
	"health":    HealthCheckAgent,
	"mental":    MentalHealthAgent,
	"covid":     CovidAgent,
	"emergency": EmergencyAgent,
	"reminder":  MedicineAgent,
	"diet":      DietAgent,
}

// ServiceCatalog returns the fixed service list. The returned slice is a
// copy so callers cannot disturb the catalog order.
func ServiceCatalog() []string {
	out := make([]string, len(serviceCatalog))
	copy(out, serviceCatalog)
	return out
}

// ServiceAgent resolves a registration service key to its default agent.
func ServiceAgent(key string) (string, bool) {
	agent, ok := serviceAgents[key]
	return agent, ok
}
