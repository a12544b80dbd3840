package api

import (
	"github.com/ombaa/ombaa/internal/config"
	"github.com/ombaa/ombaa/pkg/openapi"
)

// buildSpec assembles the OpenAPI document for the marketplace API.
func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"User": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"email":      {Type: "string", Format: "email"},
				"role":       {Type: "string", Enum: []any{"solar_farm", "shepherd", "admin"}},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"RegisterRequest": {
			Type:     "object",
			Required: []string{"email", "password", "role"},
			Properties: map[string]*openapi.Schema{
				"email":            {Type: "string", Format: "email"},
				"password":         {Type: "string"},
				"role":             {Type: "string", Enum: []any{"solar_farm", "shepherd"}},
				"company_name":     {Type: "string"},
				"contact_person":   {Type: "string"},
				"name":             {Type: "string"},
				"phone":            {Type: "string"},
				"address":          {Type: "string"},
				"experience_years": {Type: "integer"},
				"latitude":         {Type: "number"},
				"longitude":        {Type: "number"},
				"flock_size":       {Type: "integer"},
				"flock_breed":      {Type: "string"},
			},
		},
		"LoginRequest": {
			Type:     "object",
			Required: []string{"email", "password"},
			Properties: map[string]*openapi.Schema{
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string"},
			},
		},
		"LoginResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"token": {Type: "string", Description: "Bearer token"},
				"user":  openapi.SchemaRef("User"),
			},
		},
		"SolarSite": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":              {Type: "string", Format: "uuid"},
				"profile_id":      {Type: "string", Format: "uuid"},
				"name":            {Type: "string"},
				"location":        {Type: "string"},
				"total_hectares":  {Type: "number"},
				"vegetation_type": {Type: "string"},
				"latitude":        {Type: "number"},
				"longitude":       {Type: "number"},
				"created_at":      {Type: "string", Format: "date-time"},
			},
		},
		"SiteAnalytics": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"site_id":    {Type: "string", Format: "uuid"},
				"date":       {Type: "string", Format: "date"},
				"ndvi_score": {Type: "number"},
				"status":     {Type: "string", Enum: []any{"green", "yellow", "red"}},
				"notes":      {Type: "string"},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"GrazingListing": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                 {Type: "string", Format: "uuid"},
				"site_id":            {Type: "string", Format: "uuid"},
				"hectares_available": {Type: "number"},
				"start_date":         {Type: "string", Format: "date"},
				"end_date":           {Type: "string", Format: "date"},
				"price_per_hectare":  {Type: "number"},
				"status": {
					Type: "string",
					Enum: []any{"open", "matched", "contracted", "completed", "cancelled"},
				},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
		"ShepherdMatch": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Format: "uuid"},
				"listing_id":  {Type: "string", Format: "uuid"},
				"shepherd_id": {Type: "string", Format: "uuid"},
				"status":      {Type: "string", Enum: []any{"pending", "accepted", "rejected"}},
				"match_score": {Type: "number", Minimum: floatPtr(0), Maximum: floatPtr(1)},
				"created_at":  {Type: "string", Format: "date-time"},
			},
		},
		"GrazingContract": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":                {Type: "string", Format: "uuid"},
				"listing_id":        {Type: "string", Format: "uuid"},
				"shepherd_id":       {Type: "string", Format: "uuid"},
				"total_amount":      {Type: "number"},
				"platform_fee":      {Type: "number"},
				"shepherd_payout":   {Type: "number"},
				"pdf_path":          {Type: "string"},
				"solar_farm_signed": {Type: "boolean"},
				"shepherd_signed":   {Type: "boolean"},
				"payment_status":    {Type: "string", Enum: []any{"pending", "paid", "refunded"}},
				"created_at":        {Type: "string", Format: "date-time"},
			},
		},
		"WaitlistEntry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":         {Type: "string", Format: "uuid"},
				"email":      {Type: "string", Format: "email"},
				"name":       {Type: "string"},
				"role":       {Type: "string"},
				"message":    {Type: "string"},
				"source":     {Type: "string", Enum: []any{"enquiry", "waitlist"}},
				"created_at": {Type: "string", Format: "date-time"},
			},
		},
	})

	addAuthPaths(spec)
	addSitePaths(spec)
	addListingPaths(spec)
	addMatchPaths(spec)
	addDirectoryPaths(spec)

	return spec
}

func addAuthPaths(spec *openapi.Spec) {
	spec.Paths["/auth/register"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Register a new account",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("RegisterRequest", true),
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Account created", "User"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}
	spec.Paths["/auth/login"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Exchange credentials for a bearer token",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("LoginRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Authenticated", "LoginResult"),
				401: {Description: "Invalid credentials"},
			},
		},
	}
	spec.Paths["/auth/profile"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Fetch the caller's role-specific profile",
			Tags:    []string{"auth"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Profile for the caller's role"},
				401: {Description: "Missing or invalid token"},
			},
		},
		Put: &openapi.Operation{
			Summary: "Partially update the caller's profile",
			Tags:    []string{"auth"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Updated profile"},
				401: {Description: "Missing or invalid token"},
			},
		},
	}
}

func addSitePaths(spec *openapi.Spec) {
	spec.Paths["/marketplace/sites"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List the caller's solar sites",
			Tags:    []string{"sites"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Sites owned by the caller", "SolarSite"),
				403: {Description: "Caller is not a solar farm operator"},
			},
		},
		Post: &openapi.Operation{
			Summary: "Register a solar site",
			Tags:    []string{"sites"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created site", "SolarSite"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}
	spec.Paths["/marketplace/sites/{id}/analytics"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "List NDVI observations for an owned site",
			Tags:       []string{"sites"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Site identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Observation history", "SiteAnalytics"),
				403: {Description: "Site not owned by caller"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Post: &openapi.Operation{
			Summary:    "Record an NDVI observation for an owned site",
			Tags:       []string{"sites"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Site identifier")},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Recorded observation", "SiteAnalytics"),
				400: openapi.ResponseRef("BadRequest"),
			},
		},
	}
}

func addListingPaths(spec *openapi.Spec) {
	spec.Paths["/marketplace/listings"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Browse listings by status",
			Tags:    []string{"listings"},
			Parameters: []*openapi.Parameter{
				openapi.QueryParam("status", "string", "Listing status filter, defaults to open", false),
				openapi.QueryParam("page", "integer", "Page number, starting at 1", false),
				openapi.QueryParam("page_size", "integer", "Page size, capped by the server", false),
			},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Page of matching listings", "GrazingListing"),
			},
		},
		Post: &openapi.Operation{
			Summary: "Open a listing on an owned site",
			Tags:    []string{"listings"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created listing", "GrazingListing"),
				400: openapi.ResponseRef("BadRequest"),
				403: {Description: "Site not owned by caller"},
			},
		},
	}
	spec.Paths["/marketplace/listings/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Fetch a listing",
			Tags:       []string{"listings"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Listing identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("The listing", "GrazingListing"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
		Put: &openapi.Operation{
			Summary:    "Update an owned listing",
			Tags:       []string{"listings"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Listing identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated listing", "GrazingListing"),
				403: {Description: "Listing not owned by caller"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
	spec.Paths["/marketplace/listings/{id}/contract"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Draw a contract against an owned listing",
			Description: "Multipart form with amount fields and an optional signed PDF document.",
			Tags:        []string{"listings"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("id", "Listing identifier")},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Created contract", "GrazingContract"),
				400: openapi.ResponseRef("BadRequest"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}
}

func addMatchPaths(spec *openapi.Spec) {
	spec.Paths["/marketplace/matches"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List matches visible to the caller",
			Tags:    []string{"matches"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Matches for the caller's role", "ShepherdMatch"),
				401: {Description: "Missing or invalid token"},
			},
		},
	}
	spec.Paths["/marketplace/matches/{id}"] = &openapi.PathItem{
		Put: &openapi.Operation{
			Summary:    "Accept or reject a match",
			Tags:       []string{"matches"},
			Parameters: []*openapi.Parameter{openapi.PathParam("id", "Match identifier")},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Updated match", "ShepherdMatch"),
				403: {Description: "Caller is not a party to the match"},
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}
}

func addDirectoryPaths(spec *openapi.Spec) {
	filterParams := []*openapi.Parameter{
		openapi.QueryParam("country", "string", "Case-sensitive substring filter on the entry's address text", false),
		openapi.QueryParam("region", "string", "Case-sensitive substring filter on the entry's address text", false),
		openapi.QueryParam("page", "integer", "Page number, starting at 1", false),
		openapi.QueryParam("page_size", "integer", "Page size, capped by the server", false),
	}

	spec.Paths["/directory/shepherds"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Browse verified shepherds",
			Tags:       []string{"directory"},
			Parameters: filterParams,
			Responses: map[int]*openapi.Response{
				200: {Description: "Verified shepherd entries"},
			},
		},
	}
	spec.Paths["/directory/solar-parks"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:    "Browse solar sites",
			Tags:       []string{"directory"},
			Parameters: filterParams,
			Responses: map[int]*openapi.Response{
				200: {Description: "Solar site entries"},
			},
		},
	}
	spec.Paths["/directory/regions"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List known regions per country",
			Tags:    []string{"directory"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Region names keyed by country code"},
			},
		},
	}
	spec.Paths["/directory/enquiry"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Submit a visitor enquiry",
			Tags:    []string{"directory"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Stored enquiry", "WaitlistEntry"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}
	spec.Paths["/directory/waitlist"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Join the waitlist",
			Tags:    []string{"directory"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Stored signup", "WaitlistEntry"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}
}

func floatPtr(v float64) *float64 {
	return &v
}
