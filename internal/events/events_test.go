package events

import (
	"reflect"
	"testing"
)

func TestAppendAssignsSequence(t *testing.T) {
	log := &Log{}
	log.Append("a", "t", AttackDeclared{WeaponKey: "Medium Laser"})
	log.Append("a", "t", AttackResolved{WeaponKey: "Medium Laser", Target: 7, Roll: 9, Hit: true})

	recs := log.Records()
	if len(recs) != 2 {
		t.Fatalf("len(Records()) = %d, want 2", len(recs))
	}
	for i, r := range recs {
		if r.Seq != i+1 {
			t.Errorf("record %d Seq = %d, want %d", i, r.Seq, i+1)
		}
		if r.ID == "" {
			t.Errorf("record %d has empty ID", i)
		}
	}
	if recs[0].ID == recs[1].ID {
		t.Error("consecutive records share an ID")
	}
}

func TestIdenticalLogsEmitIdenticalRecords(t *testing.T) {
	build := func() []Record {
		log := &Log{}
		log.Append("a", "t", AttackDeclared{WeaponKey: "LRM-10", AmmoSpent: 1, HeatLogged: 4})
		log.Append("a", "t", AttackResolved{WeaponKey: "LRM-10", Target: 7, Roll: 8, Hit: true})
		log.Append("a", "t", DamageApplied{Location: "CT", Amount: 5, ToArmor: 5})
		return log.Records()
	}

	first, second := build(), build()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical logs diverge:\n%+v\n%+v", first, second)
	}
}
