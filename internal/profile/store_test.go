package profile

import "testing"

func TestStore_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	if store.Exists() {
		t.Fatal("fresh workspace should have no profile")
	}
	if _, ok := store.Load(); ok {
		t.Fatal("Load on missing profile should report exists=false")
	}

	p := &Profile{
		ExperienceLevel: Experience1To3Years,
		PrimaryRole:     RoleBackend,
		Technologies: map[string]Level{
			"Python": LevelPractical,
			"Docker": LevelBasic,
		},
		LearningGoal:  "understand the deployment pipeline",
		LearningStyle: StyleHandsOn,
	}
	if err := store.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok := store.Load()
	if !ok {
		t.Fatal("Load after Save reports missing")
	}
	if got.ExperienceLevel != Experience1To3Years || got.PrimaryRole != RoleBackend {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Technologies["Python"] != LevelPractical {
		t.Errorf("Technologies lost: %+v", got.Technologies)
	}
	if got.UpdatedAt.IsZero() {
		t.Error("UpdatedAt not stamped on save")
	}

	if err := store.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if store.Exists() {
		t.Error("profile still exists after delete")
	}
}

func TestDescriptors(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{ExperienceDescriptor(Experience1To3Years), "1-3 years of professional experience"},
		{RoleDescriptor(RoleBackend), "backend developer"},
		{RoleDescriptor(Role("weird")), "software developer"},
		{LevelDescriptor(LevelExpert), "expert-level knowledge"},
		{LevelDescriptor(Level("weird")), "no experience"},
		{StyleDescriptor(StyleHandsOn), "learns best by writing code hands-on"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("descriptor = %q, want %q", tt.got, tt.want)
		}
	}
}
