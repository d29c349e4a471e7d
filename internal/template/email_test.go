package template

import (
	"strings"
	"testing"
)

func TestRenderResetPassword(t *testing.T) {
	body, err := RenderResetPassword("http://localhost:5173/admin/reset-password/tok123")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(body, `href="http://localhost:5173/admin/reset-password/tok123"`) {
		t.Fatalf("body missing reset link:\n%s", body)
	}
	if !strings.Contains(body, "expires in 15 minutes") {
		t.Fatalf("body missing expiry notice:\n%s", body)
	}
}

func TestRenderAdoptionAlert(t *testing.T) {
	tests := []struct {
		name        string
		data        AdoptionAlertData
		wantParts   []string
		absentParts []string
	}{
		{
			name: "full",
			data: AdoptionAlertData{
				ProductName: "Rex",
				UserName:    "Sam",
				UserEmail:   "sam@example.com",
				UserContact: "555-1234",
				Message:     "We have a big yard",
			},
			wantParts: []string{"Rex", "Sam", "sam@example.com", "555-1234", "We have a big yard"},
		},
		{
			name: "optional-fields-omitted",
			data: AdoptionAlertData{
				ProductName: "Rex",
				UserEmail:   "sam@example.com",
			},
			wantParts:   []string{"Rex", "Unknown", "sam@example.com"},
			absentParts: []string{"Contact:", "Message:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := RenderAdoptionAlert(tt.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(body, part) {
					t.Fatalf("body missing %q:\n%s", part, body)
				}
			}
			for _, part := range tt.absentParts {
				if strings.Contains(body, part) {
					t.Fatalf("body should omit %q:\n%s", part, body)
				}
			}
		})
	}
}

func TestRenderAdoptionAlertEscapesInput(t *testing.T) {
	body, err := RenderAdoptionAlert(AdoptionAlertData{
		ProductName: "Rex",
		UserEmail:   "sam@example.com",
		Message:     `<script>alert("x")</script>`,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(body, "<script>") {
		t.Fatalf("unescaped script tag:\n%s", body)
	}
}
