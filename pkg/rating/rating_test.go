package rating

import "testing"

func TestCascadeExplicitSexualOrViolent(t *testing.T) {
	r, reasons := Cascade(AggScores{SexAct: 0.85}, StandardProfile)
	if r != R18 {
		t.Errorf("expected 18+, got %s", r)
	}
	if len(reasons) == 0 {
		t.Errorf("expected a reason tag")
	}
}

func TestCascadeMinorsRisk(t *testing.T) {
	r, _ := Cascade(AggScores{ChildRisk: 0.6, Violence: 0.55}, StandardProfile)
	if r != R18 {
		t.Errorf("expected 18+ for minors risk, got %s", r)
	}
}

func TestCascadeMonotonicity(t *testing.T) {
	low := AggScores{Violence: 0.1, Gore: 0.1}
	high := AggScores{Violence: 0.9, Gore: 0.9}
	rLow, _ := Cascade(low, StandardProfile)
	rHigh, _ := Cascade(high, StandardProfile)
	if rLow.Index() > rHigh.Index() {
		t.Errorf("lower scores must never yield a strictly stricter rating: low=%s high=%s", rLow, rHigh)
	}
}

func TestCascadeDefaultIs6Plus(t *testing.T) {
	r, reasons := Cascade(AggScores{}, StandardProfile)
	if r != R6 {
		t.Errorf("expected 6+ default, got %s", r)
	}
	if reasons != nil {
		t.Errorf("expected no reasons for the default case, got %v", reasons)
	}
}

func TestMildOfficeSceneRatesLow(t *testing.T) {
	p := NewPipeline("standard", "test")
	result := p.Rate("INT. OFFICE - DAY\n\nSarah types on her computer.\nHer phone rings.")
	if result.Rating != R6 && result.Rating != R12 {
		t.Errorf("expected 6+/12+ for mild scene, got %s", result.Rating)
	}
	if result.Agg.Violence > 0.1 || result.Agg.Gore > 0.1 || result.Agg.SexAct > 0.1 {
		t.Errorf("expected near-zero risk scores, got %+v", result.Agg)
	}
}

func TestWarehouseViolenceRatesHigh(t *testing.T) {
	p := NewPipeline("standard", "test")
	text := "INT. WAREHOUSE - NIGHT\n\nHe pulls out a gun and shoots. Blood splatters on the wall.\n" +
		"EXT. WAREHOUSE - NIGHT\n\nCorpse on the floor. Murder scene investigated by police.\n" +
		"INT. OFFICE - DAY\n\nThey discuss the attack and the shooting in detail.\n" +
		"INT. MORGUE - NIGHT\n\nThe corpse is examined, blood still fresh on the body.\n" +
		"EXT. STREET - DAY\n\nAnother shootout leaves a corpse and blood on the pavement."
	result := p.Rate(text)
	if result.Rating != R16 && result.Rating != R18 {
		t.Errorf("expected 16+/18+, got %s", result.Rating)
	}
	if result.Agg.Violence <= 0.3 {
		t.Errorf("expected violence aggregate > 0.3, got %v", result.Agg.Violence)
	}
	if len(result.TriggerScenes) == 0 {
		t.Errorf("expected non-empty trigger scenes")
	}
}

func TestHeroicDampenerRatesLowerThanPlainViolence(t *testing.T) {
	p := NewPipeline("standard", "test")
	plain := p.Rate("INT. STREET - NIGHT\n\nHe shoots and attacks. Blood splatters everywhere.\n" +
		"EXT. STREET - NIGHT\n\nHe shoots and attacks again, blood on the ground.\n" +
		"INT. ALLEY - NIGHT\n\nMore shooting and attacking, blood everywhere.\n" +
		"EXT. ALLEY - DAY\n\nThe attack continues, blood soaking the pavement.\n" +
		"INT. ROOFTOP - NIGHT\n\nA final shootout, blood pooling on the roof.")
	heroic := p.Rate("INT. STREET - NIGHT\n\nSuperman shoots a laser and attacks the villain. Blood splatters everywhere.\n" +
		"EXT. STREET - NIGHT\n\nSuperman shoots a laser and attacks again near Metropolis, blood on the ground.\n" +
		"INT. ALLEY - NIGHT\n\nMore shooting and attacking by the hero, blood everywhere.\n" +
		"EXT. ALLEY - DAY\n\nThe heroic attack continues to save the city, blood soaking the pavement.\n" +
		"INT. ROOFTOP - NIGHT\n\nA final superhero shootout, blood pooling on the roof.")

	if heroic.Agg.Violence >= plain.Agg.Violence {
		t.Errorf("expected heroic-fiction violence aggregate to be strictly lower: plain=%v heroic=%v",
			plain.Agg.Violence, heroic.Agg.Violence)
	}
}

func TestGoreExclusionScenarioRatesLow(t *testing.T) {
	p := NewPipeline("standard", "test")
	result := p.Rate("He swore a blood oath; ink dribbled on the page.")
	if result.Agg.Gore != 0 {
		t.Errorf("expected gore aggregate 0 under exclusion, got %v", result.Agg.Gore)
	}
	if result.Rating != R6 {
		t.Errorf("expected 6+, got %s", result.Rating)
	}
}

func TestPercentileSingleValue(t *testing.T) {
	if p := percentile([]float64{0.5}, 90); p != 0.5 {
		t.Errorf("expected 0.5, got %v", p)
	}
}
