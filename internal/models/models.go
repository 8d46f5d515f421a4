// Package models defines the JSON shapes served by the API: the graph
// entities, the response envelope and the pagination block.
package models

// Congress is a numbered legislative session.
type Congress struct {
	ID                 string `json:"id"`
	CongressNumber     int64  `json:"congress_number"`
	CongressWebsiteKey *int64 `json:"congress_website_key,omitempty"`
	Name               string `json:"name,omitempty"`
	Ordinal            string `json:"ordinal,omitempty"`
	StartDate          string `json:"start_date,omitempty"`
	EndDate            string `json:"end_date,omitempty"`
	StartYear          *int64 `json:"start_year,omitempty"`
	EndYear            *int64 `json:"end_year,omitempty"`
	YearRange          string `json:"year_range,omitempty"`

	// Populated only by the detail lookup.
	TotalSenators        *int64 `json:"total_senators,omitempty"`
	TotalRepresentatives *int64 `json:"total_representatives,omitempty"`
	TotalCommittees      *int64 `json:"total_committees,omitempty"`
}

// CongressRef is the abbreviated congress block embedded in a document
// detail payload.
type CongressRef struct {
	ID             string `json:"id,omitempty"`
	CongressNumber *int64 `json:"congress_number,omitempty"`
	Name           string `json:"name,omitempty"`
	Ordinal        string `json:"ordinal,omitempty"`
	YearRange      string `json:"year_range,omitempty"`
}

// CongressMembership is a person's service record in one congress. It is
// derived from relationships, not stored as its own entity.
type CongressMembership struct {
	CongressID      string `json:"congress_id"`
	CongressNumber  int64  `json:"congress_number"`
	CongressOrdinal string `json:"congress_ordinal,omitempty"`
	CongressName    string `json:"congress_name,omitempty"`
	Position        string `json:"position,omitempty"`
	Type            string `json:"type,omitempty"`
	Chamber         string `json:"chamber,omitempty"`
	StartDate       string `json:"start_date,omitempty"`
	EndDate         string `json:"end_date,omitempty"`
	YearRange       string `json:"year_range,omitempty"`
}

// Person is a legislator or bill author.
type Person struct {
	ID                         string   `json:"id"`
	FirstName                  string   `json:"first_name,omitempty"`
	LastName                   string   `json:"last_name,omitempty"`
	MiddleName                 string   `json:"middle_name,omitempty"`
	NamePrefix                 string   `json:"name_prefix,omitempty"`
	NameSuffix                 string   `json:"name_suffix,omitempty"`
	FullName                   string   `json:"full_name,omitempty"`
	ProfessionalDesignations   []string `json:"professional_designations,omitempty"`
	SenateWebsiteKeys          []string `json:"senate_website_keys,omitempty"`
	CongressWebsitePrimaryKeys []int64  `json:"congress_website_primary_keys,omitempty"`
	CongressWebsiteAuthorKeys  []string `json:"congress_website_author_keys,omitempty"`
	Aliases                    []string `json:"aliases,omitempty"`

	// Populated contextually: congresses by the detail lookup,
	// congresses_served by the list queries.
	Congresses       []CongressMembership `json:"congresses,omitempty"`
	CongressesServed []CongressMembership `json:"congresses_served,omitempty"`
}

// Author is the abbreviated person block embedded in document payloads.
type Author struct {
	ID         string   `json:"id"`
	FirstName  string   `json:"first_name,omitempty"`
	MiddleName string   `json:"middle_name,omitempty"`
	LastName   string   `json:"last_name,omitempty"`
	NameSuffix string   `json:"name_suffix,omitempty"`
	FullName   string   `json:"full_name,omitempty"`
	Aliases    []string `json:"aliases,omitempty"`
}

// Document is a bill (House Bill or Senate Bill).
type Document struct {
	ID                     string   `json:"id"`
	Type                   string   `json:"type,omitempty"`
	Subtype                string   `json:"subtype,omitempty"`
	Name                   string   `json:"name,omitempty"`
	BillNumber             *int64   `json:"bill_number,omitempty"`
	Congress               *int64   `json:"congress,omitempty"`
	Title                  string   `json:"title,omitempty"`
	LongTitle              string   `json:"long_title,omitempty"`
	CongressWebsiteTitle   string   `json:"congress_website_title,omitempty"`
	CongressWebsiteAbstract string  `json:"congress_website_abstract,omitempty"`
	DateFiled              string   `json:"date_filed,omitempty"`
	Scope                  string   `json:"scope,omitempty"`
	Subjects               []string `json:"subjects,omitempty"`
	AuthorsRaw             string   `json:"authors_raw,omitempty"`
	SenateWebsitePermalink string   `json:"senate_website_permalink,omitempty"`
	DownloadURLSources     []string `json:"download_url_sources,omitempty"`

	Authors         []Author     `json:"authors,omitempty"`
	CongressDetails *CongressRef `json:"congress_details,omitempty"`
}

// Committee is a congressional committee.
type Committee struct {
	ID                string   `json:"id"`
	Name              string   `json:"name,omitempty"`
	Type              string   `json:"type,omitempty"`
	SenateWebsiteKeys []string `json:"senate_website_keys,omitempty"`
}

// CongressBillStats is one row of the per-congress bill breakdown.
type CongressBillStats struct {
	Congress    int64 `json:"congress"`
	Total       int64 `json:"total"`
	HouseBills  int64 `json:"house_bills"`
	SenateBills int64 `json:"senate_bills"`
}

// Stats is the aggregate counts payload.
type Stats struct {
	TotalBills       int64               `json:"total_bills"`
	TotalHouseBills  int64               `json:"total_house_bills"`
	TotalSenateBills int64               `json:"total_senate_bills"`
	TotalCongresses  int64               `json:"total_congresses"`
	TotalPeople      int64               `json:"total_people"`
	TotalCommittees  int64               `json:"total_committees"`
	BillsWithDates   int64               `json:"bills_with_dates"`
	BillsWithoutDates int64              `json:"bills_without_dates"`
	BillsByCongress  []CongressBillStats `json:"bills_by_congress"`
}
