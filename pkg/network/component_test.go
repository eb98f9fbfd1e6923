package network

import "testing"

func TestTypeForID_PrefixTable(t *testing.T) {
	tests := []struct {
		id   string
		want ComponentType
	}{
		{"MC1", TypeCanal},
		{"MC12", TypeCanal},
		{"DP3", TypeDistributionPoint},
		{"ZT7", TypeGate},
		{"SW2", TypeSmartWater},
		{"F15", TypeField},
		{"X1", TypeUnknown},
		{"PUMP9", TypeUnknown},
		{"", TypeUnknown},
		{"42", TypeUnknown},
	}

	for _, tt := range tests {
		if got := TypeForID(tt.id, StrictTyping); got != tt.want {
			t.Errorf("TypeForID(%q, strict) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestTypeForID_LegacyCanalPolicy(t *testing.T) {
	if got := TypeForID("X1", LegacyCanalTyping); got != TypeCanal {
		t.Errorf("TypeForID(X1, legacy) = %v, want canal", got)
	}
	// Known prefixes are unaffected by the policy.
	if got := TypeForID("F2", LegacyCanalTyping); got != TypeField {
		t.Errorf("TypeForID(F2, legacy) = %v, want field", got)
	}
}

func TestIDPrefix(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"MC12", "MC"},
		{"F1", "F"},
		{"SW", "SW"},
		{"1MC", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := IDPrefix(tt.id); got != tt.want {
			t.Errorf("IDPrefix(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestComponentType_IsControl(t *testing.T) {
	if !TypeGate.IsControl() || !TypeSmartWater.IsControl() {
		t.Error("gates and smart water meters are control devices")
	}
	if TypeCanal.IsControl() || TypeField.IsControl() || TypeUnknown.IsControl() {
		t.Error("canals, fields, and unknown components are not control devices")
	}
}

func TestNetworkPolicy_AppliedOnCreate(t *testing.T) {
	strict := New()
	strict.AddComponent("X1", "mystery")
	c, _ := strict.Component("X1")
	if c.Type != TypeUnknown {
		t.Errorf("strict network typed X1 as %v, want unknown", c.Type)
	}

	legacy := NewWithPolicy(LegacyCanalTyping)
	legacy.AddComponent("X1", "mystery")
	c, _ = legacy.Component("X1")
	if c.Type != TypeCanal {
		t.Errorf("legacy network typed X1 as %v, want canal", c.Type)
	}
}
