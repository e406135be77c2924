package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/contagion/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of the disease progression
// for the given parameters. Each transition edge is labelled with the
// per-step probability that drives it, and each state node is styled with
// the same palette the grid renderers use.
func GenerateMermaid(p domain.Params) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range domain.States {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeID(s), s))
	}

	sb.WriteString(fmt.Sprintf("    %s -- \"infect %.3f\" --> %s\n",
		nodeID(domain.Susceptible), p.Infect, nodeID(domain.Latent)))
	sb.WriteString(fmt.Sprintf("    %s -- \"symptom %.3f\" --> %s\n",
		nodeID(domain.Latent), p.Symptom, nodeID(domain.Infected)))
	sb.WriteString(fmt.Sprintf("    %s -- \"recover %.3f\" --> %s\n",
		nodeID(domain.Infected), p.Recover, nodeID(domain.Recovered)))

	// Force explicit text colors for contrast regardless of theme (Light/Dark).
	sb.WriteString("\n    classDef susceptible fill:#3737c8,stroke:#01579b,color:#fff;\n")
	sb.WriteString("    classDef latent fill:#ffff37,stroke:#fbc02d,color:#000;\n")
	sb.WriteString("    classDef infected fill:#c83737,stroke:#b71c1c,color:#fff;\n")
	sb.WriteString("    classDef recovered fill:#37c837,stroke:#1b5e20,color:#000;\n")
	for _, s := range domain.States {
		sb.WriteString(fmt.Sprintf("    class %s %s;\n", nodeID(s), nodeID(s)))
	}

	return sb.String()
}

func nodeID(s domain.State) string {
	return strings.ToLower(s.String())
}
