package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"xgrowth-backend/internal/config"
	"xgrowth-backend/internal/database"
	"xgrowth-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedActor = "seed"

// Simple structures that directly match DB schema
type OrganizationTypeData struct {
	Name                    string `yaml:"name"`
	Description             string `yaml:"description"`
	SeesAllPotentialClients bool   `yaml:"sees_all_potential_clients"`
}

type LookupData struct {
	Kind   string   `yaml:"kind"`
	Values []string `yaml:"values"`
}

type CategoryData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type CompanyData struct {
	Name        string `yaml:"name"`
	EmailDomain string `yaml:"email_domain"`
	Description string `yaml:"description"`
}

// OrganizationData references lookups and types by name
type OrganizationData struct {
	Name           string        `yaml:"name"`
	Type           string        `yaml:"type"`
	Description    string        `yaml:"description"`
	Website        string        `yaml:"website"`
	Skills         []string      `yaml:"skills,omitempty"`
	Segments       []string      `yaml:"segments,omitempty"`
	Certifications []string      `yaml:"certifications,omitempty"`
	Regions        []string      `yaml:"regions,omitempty"`
	Products       []string      `yaml:"products,omitempty"`
	Companies      []CompanyData `yaml:"companies"`
}

// RelationData connects two companies by email domain
type RelationData struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

type UserData struct {
	Email     string `yaml:"email"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Role      string `yaml:"role"`
}

type OrganizationTypesFile struct {
	OrganizationTypes []OrganizationTypeData `yaml:"organization_types"`
}

type LookupsFile struct {
	Lookups []LookupData `yaml:"lookups"`
}

type CategoriesFile struct {
	Categories []CategoryData `yaml:"categories"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type RelationsFile struct {
	Relations []RelationData `yaml:"relations"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var (
		typesFile     OrganizationTypesFile
		lookupsFile   LookupsFile
		categoryFile  CategoriesFile
		orgsFile      OrganizationsFile
		relationsFile RelationsFile
		usersFile     UsersFile
	)
	files := map[string]interface{}{
		"organization_types": &typesFile,
		"lookups":            &lookupsFile,
		"categories":         &categoryFile,
		"organizations":      &orgsFile,
		"relations":          &relationsFile,
		"users":              &usersFile,
	}
	for name, target := range files {
		if err := readYAML(dataDir, name, target); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}

	typeMap := make(map[string]*models.OrganizationType)
	created := 0
	for _, data := range typesFile.OrganizationTypes {
		orgType := models.OrganizationType{
			Name:                    data.Name,
			Description:             data.Description,
			SeesAllPotentialClients: data.SeesAllPotentialClients,
		}
		ok, err := createIfMissing(db, &orgType, "name = ?", data.Name)
		if err != nil {
			return fmt.Errorf("failed to create organization type %s: %w", data.Name, err)
		}
		typeMap[data.Name] = &orgType
		created += ok
	}
	log.Printf("📋 Organization types: %d created, %d total", created, len(typesFile.OrganizationTypes))

	lookupMap := make(map[models.LookupKind]map[string]uuid.UUID)
	created, total := 0, 0
	for _, data := range lookupsFile.Lookups {
		kind := models.LookupKind(data.Kind)
		if !kind.IsValid() {
			return fmt.Errorf("unknown lookup kind %q", data.Kind)
		}
		if lookupMap[kind] == nil {
			lookupMap[kind] = make(map[string]uuid.UUID)
		}
		for _, name := range data.Values {
			value := models.LookupValue{Kind: kind, Name: name}
			ok, err := createIfMissing(db, &value, "kind = ? AND name = ?", kind, name)
			if err != nil {
				return fmt.Errorf("failed to create lookup %s/%s: %w", kind, name, err)
			}
			lookupMap[kind][name] = value.ID
			created += ok
			total++
		}
	}
	log.Printf("📋 Lookup values: %d created, %d total", created, total)

	created = 0
	for _, data := range categoryFile.Categories {
		category := models.Category{Name: data.Name, Description: data.Description}
		ok, err := createIfMissing(db, &category, "name = ?", data.Name)
		if err != nil {
			return fmt.Errorf("failed to create category %s: %w", data.Name, err)
		}
		created += ok
	}
	log.Printf("📋 Categories: %d created, %d total", created, len(categoryFile.Categories))

	companyMap := make(map[string]*models.CompanyProfile)
	orgCreated, companyCreated, companyTotal := 0, 0, 0
	for _, data := range orgsFile.Organizations {
		org, ok, err := createOrganization(db, data, typeMap, lookupMap)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", data.Name, err)
		}
		orgCreated += ok
		for _, c := range data.Companies {
			company := models.CompanyProfile{
				BaseModel:      models.BaseModel{CreatedBy: seedActor},
				Name:           c.Name,
				OrganizationID: org.ID,
				EmailDomain:    strings.ToLower(c.EmailDomain),
				Description:    c.Description,
			}
			ok, err := createIfMissing(db, &company, "email_domain = ?", company.EmailDomain)
			if err != nil {
				return fmt.Errorf("failed to create company %s: %w", c.Name, err)
			}
			companyMap[company.EmailDomain] = &company
			companyCreated += ok
			companyTotal++
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(orgsFile.Organizations))
	log.Printf("📋 Companies: %d created, %d total", companyCreated, companyTotal)

	created = 0
	for _, data := range relationsFile.Relations {
		ok, err := createRelation(db, data, companyMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create relation %s <-> %s: %v", data.A, data.B, err)
			continue
		}
		created += ok
	}
	log.Printf("📋 Relations: %d created, %d total", created, len(relationsFile.Relations))

	created = 0
	for _, data := range usersFile.Users {
		ok, err := createUser(db, data, companyMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create user %s: %v", data.Email, err)
			continue
		}
		created += ok
	}
	log.Printf("📋 Users: %d created, %d total", created, len(usersFile.Users))

	return nil
}

// readYAML decodes every .yaml file under dataDir whose name contains marker into target
func readYAML(dataDir, marker string, target interface{}) error {
	return filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".yaml") || strings.TrimSuffix(d.Name(), ".yaml") != marker {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return yaml.Unmarshal(data, target)
	})
}

// createIfMissing loads the row matching where into model, creating model when absent.
// Returns 1 when a row was created.
func createIfMissing(db *gorm.DB, model interface{}, where string, args ...interface{}) (int, error) {
	err := db.Where(where, args...).First(model).Error
	if err == nil {
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to query: %w", err)
	}
	if err := db.Create(model).Error; err != nil {
		return 0, fmt.Errorf("failed to create: %w", err)
	}
	return 1, nil
}

func createOrganization(db *gorm.DB, data OrganizationData, typeMap map[string]*models.OrganizationType, lookupMap map[models.LookupKind]map[string]uuid.UUID) (*models.Organization, int, error) {
	org := models.Organization{
		BaseModel:   models.BaseModel{CreatedBy: seedActor},
		Name:        data.Name,
		Description: data.Description,
		Website:     data.Website,
	}
	if data.Type != "" {
		orgType := typeMap[data.Type]
		if orgType == nil {
			return nil, 0, fmt.Errorf("organization type %s not found", data.Type)
		}
		org.OrganizationTypeID = &orgType.ID
	}

	var err error
	if org.SkillIDs, err = lookupIDs(lookupMap, models.LookupKindSkill, data.Skills); err != nil {
		return nil, 0, err
	}
	if org.SegmentIDs, err = lookupIDs(lookupMap, models.LookupKindSegment, data.Segments); err != nil {
		return nil, 0, err
	}
	if org.CertificationIDs, err = lookupIDs(lookupMap, models.LookupKindCertification, data.Certifications); err != nil {
		return nil, 0, err
	}
	if org.RegionIDs, err = lookupIDs(lookupMap, models.LookupKindRegion, data.Regions); err != nil {
		return nil, 0, err
	}
	if org.ProductIDs, err = lookupIDs(lookupMap, models.LookupKindProduct, data.Products); err != nil {
		return nil, 0, err
	}

	created, err := createIfMissing(db, &org, "name = ?", data.Name)
	if err != nil {
		return nil, 0, err
	}
	return &org, created, nil
}

func lookupIDs(lookupMap map[models.LookupKind]map[string]uuid.UUID, kind models.LookupKind, names []string) (pq.StringArray, error) {
	ids := make(pq.StringArray, 0, len(names))
	for _, name := range names {
		id, ok := lookupMap[kind][name]
		if !ok {
			return nil, fmt.Errorf("%s %q not found", kind, name)
		}
		ids = append(ids, id.String())
	}
	return ids, nil
}

func createRelation(db *gorm.DB, data RelationData, companyMap map[string]*models.CompanyProfile) (int, error) {
	a, b := companyMap[strings.ToLower(data.A)], companyMap[strings.ToLower(data.B)]
	if a == nil || b == nil {
		return 0, fmt.Errorf("unknown company domain")
	}
	if a.ID == b.ID {
		return 0, fmt.Errorf("a company cannot be related to itself")
	}
	relation := models.CompanyRelation{
		BaseModel:  models.BaseModel{CreatedBy: seedActor},
		CompanyAID: a.ID,
		CompanyBID: b.ID,
	}
	return createIfMissing(db, &relation,
		"(company_a_id = ? AND company_b_id = ?) OR (company_a_id = ? AND company_b_id = ?)",
		a.ID, b.ID, b.ID, a.ID)
}

func createUser(db *gorm.DB, data UserData, companyMap map[string]*models.CompanyProfile) (int, error) {
	email := strings.ToLower(data.Email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return 0, fmt.Errorf("invalid email")
	}
	company := companyMap[email[at+1:]]
	if company == nil {
		return 0, fmt.Errorf("no company for domain %s", email[at+1:])
	}

	role := models.Role(data.Role)
	if !role.IsValid() {
		role = models.RoleStandard
	}
	user := models.User{
		BaseModel:      models.BaseModel{CreatedBy: seedActor},
		Email:          email,
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Role:           role,
		CompanyID:      &company.ID,
		OrganizationID: &company.OrganizationID,
	}
	return createIfMissing(db, &user, "email = ?", email)
}
