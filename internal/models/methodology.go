package models

// MethodologyDimension describes one scoring dimension for display
type MethodologyDimension struct {
	Name        string   `json:"name"`
	Weight      float64  `json:"weight"`
	Description string   `json:"description"`
	Signals     []string `json:"signals"`
}

// Methodology is the static description of the scoring approach
type Methodology struct {
	Overview   string                 `json:"overview"`
	Dimensions []MethodologyDimension `json:"dimensions"`
	Philosophy string                 `json:"philosophy"`
}
