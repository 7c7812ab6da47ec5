package models

// PostOffice is one locality entry returned by the postal code directory
type PostOffice struct {
	Name     string `json:"Name"`
	Block    string `json:"Block"`
	District string `json:"District"`
	State    string `json:"State"`
}

// PincodeDirectoryResponse is one element of the directory's response array
type PincodeDirectoryResponse struct {
	Message    string       `json:"Message"`
	Status     string       `json:"Status"`
	PostOffice []PostOffice `json:"PostOffice"`
}

// PincodeStatusSuccess is the directory's status flag for a found postal code
const PincodeStatusSuccess = "Success"

// Locality is the city/state autofill derived from a postal code
type Locality struct {
	PostalCode string `json:"pincode" example:"560001"`
	City       string `json:"city" example:"Bangalore North"`
	Region     string `json:"state" example:"Karnataka"`
}
