package taxonomy

import "testing"

func TestExtractSOC(t *testing.T) {
	soc, ok := ExtractSOC("15-1252.00")
	if !ok || soc != "15-1252" {
		t.Fatalf("expected 15-1252, got %q ok=%v", soc, ok)
	}
}

func TestLoadTasksWeightMath(t *testing.T) {
	// Scenario S1: T1 (IM=5, RT=100, FT expected=7) should dominate T2 (IM=3, RT=50, FT expected=4).
	statements := []map[string]string{
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "1", "Task": "write reports", "Task Type": "Core"},
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "2", "Task": "operate heavy machinery", "Task Type": "Core"},
	}
	ratings := []map[string]string{
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "1", "Scale ID": "IM", "Category": "", "Data Value": "5"},
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "1", "Scale ID": "RT", "Category": "", "Data Value": "100"},
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "1", "Scale ID": "FT", "Category": "7", "Data Value": "1"},
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "2", "Scale ID": "IM", "Category": "", "Data Value": "3"},
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "2", "Scale ID": "RT", "Category": "", "Data Value": "50"},
		{"O*NET-SOC Code": "15-1252.00", "Task ID": "2", "Scale ID": "FT", "Category": "4", "Data Value": "1"},
	}

	tasks := LoadTasks(statements, ratings)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}

	byID := map[string]float64{}
	for _, task := range tasks {
		if task.Weight < 0.01 || task.Weight > 1 {
			t.Errorf("task %s weight out of bounds: %v", task.TaskID, task.Weight)
		}
		byID[task.TaskID] = task.Weight
	}
	if byID["1"] <= byID["2"] {
		t.Errorf("expected task 1 weight (%v) to dominate task 2 (%v)", byID["1"], byID["2"])
	}
	if byID["1"] < 0.9 {
		t.Errorf("expected task 1 weight near 1, got %v", byID["1"])
	}
}

func TestLoadOccupationsPrefersBaseVariant(t *testing.T) {
	rows := []map[string]string{
		{"O*NET-SOC Code": "15-1252.01", "Title": "Variant Title"},
		{"O*NET-SOC Code": "15-1252.00", "Title": "Software Developers"},
	}
	occs := LoadOccupations(rows)
	if len(occs) != 1 {
		t.Fatalf("expected 1 merged occupation, got %d", len(occs))
	}
	if occs[0].Title != "Software Developers" {
		t.Errorf("expected base-variant title, got %q", occs[0].Title)
	}
}
