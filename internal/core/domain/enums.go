package domain

import "strings"

type Cohort string

const (
	CohortL1 Cohort = "L1"
	CohortL2 Cohort = "L2"
	CohortL3 Cohort = "L3"
)

var Cohorts = []Cohort{CohortL1, CohortL2, CohortL3}

func ParseCohort(s string) (Cohort, error) {
	c := Cohort(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Cohorts {
		if c == known {
			return c, nil
		}
	}
	return "", ErrInvalidCohort
}

type Program string

const (
	ProgramTheology       Program = "FTH"
	ProgramCommunication  Program = "FDC"
	ProgramPhilosophy     Program = "FPH"
	ProgramEconomics      Program = "FED"
	ProgramSocialSciences Program = "FCS"
	ProgramLaw            Program = "FDR"
	ProgramPolitics       Program = "FSPO"
	ProgramComputing      Program = "FSI"
	ProgramMedicine       Program = "MED"
)

var Programs = []Program{
	ProgramTheology,
	ProgramCommunication,
	ProgramPhilosophy,
	ProgramEconomics,
	ProgramSocialSciences,
	ProgramLaw,
	ProgramPolitics,
	ProgramComputing,
	ProgramMedicine,
}

// programAliases maps the labels shown by the registration form to codes.
var programAliases = map[string]Program{
	"MÉDECINE": ProgramMedicine,
	"MEDECINE": ProgramMedicine,
}

func ParseProgram(s string) (Program, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	if p, ok := programAliases[key]; ok {
		return p, nil
	}
	p := Program(key)
	for _, known := range Programs {
		if p == known {
			return p, nil
		}
	}
	return "", ErrInvalidProgram
}
