package model

// FormDate is a date as it appears on the scanned National Insurance
// form: free-text day/month/year parts, never normalized.
type FormDate struct {
	Day   string `json:"day"`
	Month string `json:"month"`
	Year  string `json:"year"`
}

// FormAddress is the address block of the injury form
type FormAddress struct {
	Street      string `json:"street"`
	HouseNumber string `json:"houseNumber"`
	Entrance    string `json:"entrance"`
	Apartment   string `json:"apartment"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	POBox       string `json:"poBox"`
}

// MedicalInstitutionFields is the clinic-only section of the injury form
type MedicalInstitutionFields struct {
	HealthFundMember string `json:"healthFundMember"`
	NatureOfAccident string `json:"natureOfAccident"`
	MedicalDiagnoses string `json:"medicalDiagnoses"`
}

// InjuryForm is the closed record extracted from a National Insurance
// injury report form. All leaves are strings; missing values are empty
// strings, never null.
type InjuryForm struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	IDNumber  string `json:"idNumber"`
	Gender    string `json:"gender"`

	DateOfBirth FormDate    `json:"dateOfBirth"`
	Address     FormAddress `json:"address"`

	LandlinePhone string `json:"landlinePhone"`
	MobilePhone   string `json:"mobilePhone"`
	JobType       string `json:"jobType"`

	DateOfInjury FormDate `json:"dateOfInjury"`
	TimeOfInjury string   `json:"timeOfInjury"`

	AccidentLocation    string `json:"accidentLocation"`
	AccidentAddress     string `json:"accidentAddress"`
	AccidentDescription string `json:"accidentDescription"`
	InjuredBodyPart     string `json:"injuredBodyPart"`

	Signature string `json:"signature"`

	FormFillingDate         FormDate `json:"formFillingDate"`
	FormReceiptDateAtClinic FormDate `json:"formReceiptDateAtClinic"`

	MedicalInstitutionFields MedicalInstitutionFields `json:"medicalInstitutionFields"`
}

// FormLeaf is one scalar field of the form, addressed by its dotted path
type FormLeaf struct {
	Path  string
	Value string
}

// Leaves enumerates every scalar field of the form in declaration order.
// Completeness scoring and missing-field reporting operate on this list.
func (f *InjuryForm) Leaves() []FormLeaf {
	leaves := []FormLeaf{
		{"lastName", f.LastName},
		{"firstName", f.FirstName},
		{"idNumber", f.IDNumber},
		{"gender", f.Gender},
	}
	leaves = append(leaves, f.DateOfBirth.leaves("dateOfBirth")...)
	leaves = append(leaves,
		FormLeaf{"address.street", f.Address.Street},
		FormLeaf{"address.houseNumber", f.Address.HouseNumber},
		FormLeaf{"address.entrance", f.Address.Entrance},
		FormLeaf{"address.apartment", f.Address.Apartment},
		FormLeaf{"address.city", f.Address.City},
		FormLeaf{"address.postalCode", f.Address.PostalCode},
		FormLeaf{"address.poBox", f.Address.POBox},
		FormLeaf{"landlinePhone", f.LandlinePhone},
		FormLeaf{"mobilePhone", f.MobilePhone},
		FormLeaf{"jobType", f.JobType},
	)
	leaves = append(leaves, f.DateOfInjury.leaves("dateOfInjury")...)
	leaves = append(leaves,
		FormLeaf{"timeOfInjury", f.TimeOfInjury},
		FormLeaf{"accidentLocation", f.AccidentLocation},
		FormLeaf{"accidentAddress", f.AccidentAddress},
		FormLeaf{"accidentDescription", f.AccidentDescription},
		FormLeaf{"injuredBodyPart", f.InjuredBodyPart},
		FormLeaf{"signature", f.Signature},
	)
	leaves = append(leaves, f.FormFillingDate.leaves("formFillingDate")...)
	leaves = append(leaves, f.FormReceiptDateAtClinic.leaves("formReceiptDateAtClinic")...)
	leaves = append(leaves,
		FormLeaf{"medicalInstitutionFields.healthFundMember", f.MedicalInstitutionFields.HealthFundMember},
		FormLeaf{"medicalInstitutionFields.natureOfAccident", f.MedicalInstitutionFields.NatureOfAccident},
		FormLeaf{"medicalInstitutionFields.medicalDiagnoses", f.MedicalInstitutionFields.MedicalDiagnoses},
	)
	return leaves
}

func (d *FormDate) leaves(prefix string) []FormLeaf {
	return []FormLeaf{
		{prefix + ".day", d.Day},
		{prefix + ".month", d.Month},
		{prefix + ".year", d.Year},
	}
}

// ValidationReport is the result of the batch form completeness check.
// It only reports; the extracted data is never modified.
type ValidationReport struct {
	IsValid       bool     `json:"is_valid"`
	Errors        []string `json:"errors"`
	Warnings      []string `json:"warnings"`
	Completeness  float64  `json:"completeness"`
	MissingFields []string `json:"missing_fields"`
}
