package tower

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	states := []State{
		NewState(),
		{
			Floor:                12,
			Lives:                1,
			Inventory:            []Relic{PhoenixFeather, PhoenixFeather, TimeStone},
			Achievements:         Achievements{Floor10: true, SixDoorsInRow: 6, TrapsDodged: 5},
			LastSafeDoors:        []int{1, 3, 2, 4, 2, 4, 2, 4, 2, 4, 2, 4},
			ConsecutiveSafeDoors: 2,
			NoDamageThisRun:      false,
		},
	}
	for _, s := range states {
		data, err := Encode(s)
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%s): %v", data, err)
		}
		if !reflect.DeepEqual(got, s) {
			t.Errorf("round trip = %+v, want %+v", got, s)
		}
	}
}

func TestEncodeFieldNames(t *testing.T) {
	data, err := Encode(NewState())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := []string{"floor", "lives", "inventory", "achievements", "lastSafeDoors", "consecutiveSafeDoors", "noDamageThisRun"}
	if len(fields) != len(want) {
		t.Errorf("snapshot has %d fields, want %d: %s", len(fields), len(want), data)
	}
	for _, k := range want {
		if _, ok := fields[k]; !ok {
			t.Errorf("snapshot missing %q: %s", k, data)
		}
	}
	if string(fields["inventory"]) != "[]" {
		t.Errorf("inventory = %s, want []", fields["inventory"])
	}
}

func TestDecodeDefaultsMissingFields(t *testing.T) {
	s, err := Decode([]byte(`{"floor": 4, "lives": 2}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := NewState()
	want.Floor = 4
	want.Lives = 2
	if !reflect.DeepEqual(s, want) {
		t.Errorf("Decode = %+v, want %+v", s, want)
	}
	if !s.NoDamageThisRun {
		t.Error("missing noDamageThisRun must decode as true")
	}
}

func TestDecodeKeepsExplicitFalse(t *testing.T) {
	s, err := Decode([]byte(`{"floor": 2, "lives": 3, "noDamageThisRun": false}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.NoDamageThisRun {
		t.Error("explicit false was replaced by the default")
	}
}

func TestDecodeBrowserSave(t *testing.T) {
	raw := `{"floor":6,"lives":2,"inventory":["Vision Lens"],` +
		`"achievements":{"floor10":false,"sixDoorsInRow":0,"trapsDodged":4,"noDamageVictory":false},` +
		`"lastSafeDoors":[1,2,2,4,3,4,3],"consecutiveSafeDoors":1,"noDamageThisRun":false}`
	s, err := Decode([]byte(raw))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s.Floor != 6 || s.Lives != 2 || s.Achievements.TrapsDodged != 4 {
		t.Errorf("Decode = %+v", s)
	}
	if !s.HasRelic(VisionLens) {
		t.Error("inventory lost the Vision Lens")
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want error
	}{
		{"empty", "", ErrNoSnapshot},
		{"null", "null", ErrNoSnapshot},
		{"garbage", "{not json", ErrCorruptSnapshot},
		{"wrong type", `{"floor":"high","lives":3}`, ErrCorruptSnapshot},
		{"missing floor", `{"lives":3}`, ErrCorruptSnapshot},
		{"missing lives", `{"floor":3}`, ErrCorruptSnapshot},
		{"floor zero", `{"floor":0,"lives":3}`, ErrCorruptSnapshot},
		{"negative lives", `{"floor":2,"lives":-1}`, ErrCorruptSnapshot},
		{"door out of range", `{"floor":2,"lives":3,"lastSafeDoors":[9]}`, ErrCorruptSnapshot},
		{"unknown relic", `{"floor":2,"lives":3,"inventory":["Excalibur"],"lastSafeDoors":[1]}`, ErrCorruptSnapshot},
		{"streak longer than history", `{"floor":2,"lives":3,"lastSafeDoors":[1],"consecutiveSafeDoors":9}`, ErrCorruptSnapshot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.data))
			if !errors.Is(err, tc.want) {
				t.Errorf("Decode(%q) err = %v, want %v", tc.data, err, tc.want)
			}
		})
	}
}
