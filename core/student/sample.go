package student

// SampleRoster returns the demo records a fresh dashboard starts with.
// Averages: 92.6, 87.2, 64.6, 55.0, 48.0.
func SampleRoster() []NewStudent {
	return []NewStudent{
		{
			Name:   "Aarav Sharma",
			RollNo: "101",
			Marks: Marks{
				SubjectMath:     95,
				SubjectScience:  92,
				SubjectEnglish:  88,
				SubjectHistory:  90,
				SubjectComputer: 98,
			},
		},
		{
			Name:   "Diya Patel",
			RollNo: "102",
			Marks: Marks{
				SubjectMath:     90,
				SubjectScience:  85,
				SubjectEnglish:  88,
				SubjectHistory:  82,
				SubjectComputer: 91,
			},
		},
		{
			Name:   "Rohan Gupta",
			RollNo: "103",
			Marks: Marks{
				SubjectMath:     65,
				SubjectScience:  60,
				SubjectEnglish:  70,
				SubjectHistory:  58,
				SubjectComputer: 70,
			},
		},
		{
			Name:   "Sneha Iyer",
			RollNo: "104",
			Marks: Marks{
				SubjectMath:     55,
				SubjectScience:  52,
				SubjectEnglish:  60,
				SubjectHistory:  48,
				SubjectComputer: 60,
			},
		},
		{
			Name:   "Kabir Singh",
			RollNo: "105",
			Marks: Marks{
				SubjectMath:     45,
				SubjectScience:  40,
				SubjectEnglish:  55,
				SubjectHistory:  42,
				SubjectComputer: 58,
			},
		},
	}
}
