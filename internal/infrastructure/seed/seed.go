// Package seed populates an empty database with the initial site
// content: the default admin account and sample business units,
// products, financial reports, SHU distributions and news articles.
// Seeding is idempotent; collections that already hold documents are
// left untouched.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/bumdes-sale/backend/internal/core/domain"
	"github.com/bumdes-sale/backend/internal/core/ports"
	"github.com/bumdes-sale/backend/internal/infrastructure/db/mongo"
	"github.com/bumdes-sale/backend/pkg/password"
)

const (
	adminUsername = "admin"
	adminPassword = "admin123"
)

// Seeder inserts the initial dataset.
type Seeder struct {
	users    ports.UserRepository
	units    ports.DocumentStore[domain.BusinessUnit]
	products ports.DocumentStore[domain.Product]
	reports  ports.DocumentStore[domain.FinancialReport]
	shu      ports.DocumentStore[domain.SHUDistribution]
	news     ports.DocumentStore[domain.News]
	log      zerolog.Logger
}

func New(db *mongodriver.Database, log zerolog.Logger) *Seeder {
	return &Seeder{
		users:    mongo.NewUserRepository(db),
		units:    mongo.NewCollection[domain.BusinessUnit](db, mongo.CollUnits),
		products: mongo.NewCollection[domain.Product](db, mongo.CollProducts),
		reports:  mongo.NewCollection[domain.FinancialReport](db, mongo.CollReports),
		shu:      mongo.NewCollection[domain.SHUDistribution](db, mongo.CollSHU),
		news:     mongo.NewCollection[domain.News](db, mongo.CollNews),
		log:      log.With().Str("component", "seed").Logger(),
	}
}

// Run seeds every collection that is still empty.
func (s *Seeder) Run(ctx context.Context) error {
	admin, err := s.ensureAdmin(ctx)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	if err := s.seedUnits(ctx); err != nil {
		return fmt.Errorf("seed business units: %w", err)
	}
	if err := s.seedProducts(ctx); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	if err := s.seedReports(ctx); err != nil {
		return fmt.Errorf("seed financial reports: %w", err)
	}
	if err := s.seedSHU(ctx); err != nil {
		return fmt.Errorf("seed shu distributions: %w", err)
	}
	if err := s.seedNews(ctx, admin.ID); err != nil {
		return fmt.Errorf("seed news: %w", err)
	}
	s.log.Info().Msg("database seeding completed")
	return nil
}

func (s *Seeder) ensureAdmin(ctx context.Context) (*domain.User, error) {
	existing, err := s.users.FindByUsername(ctx, adminUsername)
	if err == nil {
		s.log.Info().Msg("admin user already exists")
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := password.Hash(adminPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin, err := s.users.Create(ctx, &domain.User{
		Username:     adminUsername,
		Email:        "admin@bumdesdesasale.id",
		FullName:     "Administrator",
		Phone:        "+62 812-3456-7890",
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("username", adminUsername).Msg("admin user created")
	return admin, nil
}

func (s *Seeder) seedUnits(ctx context.Context) error {
	count, err := s.units.Count(ctx, ports.Filter{})
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("business units already exist")
		return nil
	}

	now := time.Now().UTC()
	units := []*domain.BusinessUnit{
		{
			Name:        domain.BilingualText{ID: "Toko Serba Ada Desa", EN: "Village General Store"},
			Category:    "Retail",
			Description: domain.BilingualText{ID: "Menyediakan kebutuhan sehari-hari warga dengan harga terjangkau", EN: "Providing daily necessities for residents at affordable prices"},
			Revenue:     "Rp 450 Juta",
			Contact:     "+62 812-1111-1111",
			TeamSize:    8,
		},
		{
			Name:        domain.BilingualText{ID: "Simpan Pinjam Desa", EN: "Village Savings and Loans"},
			Category:    "Keuangan",
			Description: domain.BilingualText{ID: "Layanan simpan pinjam untuk modal usaha warga", EN: "Savings and loan services for villagers' business capital"},
			Revenue:     "Rp 650 Juta",
			Contact:     "+62 812-2222-2222",
			TeamSize:    5,
		},
		{
			Name:        domain.BilingualText{ID: "Pengelolaan Sampah", EN: "Waste Management"},
			Category:    "Lingkungan",
			Description: domain.BilingualText{ID: "Bank sampah dan daur ulang untuk desa bersih", EN: "Waste bank and recycling for a clean village"},
			Revenue:     "Rp 180 Juta",
			Contact:     "+62 812-3333-3333",
			TeamSize:    12,
		},
		{
			Name:        domain.BilingualText{ID: "Wisata Desa", EN: "Village Tourism"},
			Category:    "Pariwisata",
			Description: domain.BilingualText{ID: "Paket wisata alam dan budaya Desa Sale", EN: "Nature and culture tourism packages of Sale Village"},
			Revenue:     "Rp 320 Juta",
			Contact:     "+62 812-4444-4444",
			TeamSize:    10,
		},
		{
			Name:        domain.BilingualText{ID: "Produk Pertanian", EN: "Agricultural Products"},
			Category:    "Agribisnis",
			Description: domain.BilingualText{ID: "Pemasaran hasil pertanian lokal", EN: "Marketing of local agricultural products"},
			Revenue:     "Rp 520 Juta",
			Contact:     "+62 812-5555-5555",
			TeamSize:    15,
		},
		{
			Name:        domain.BilingualText{ID: "Kerajinan Tangan", EN: "Handicrafts"},
			Category:    "UMKM",
			Description: domain.BilingualText{ID: "Produksi dan pemasaran kerajinan khas desa", EN: "Production and marketing of village handicrafts"},
			Revenue:     "Rp 280 Juta",
			Contact:     "+62 812-6666-6666",
			TeamSize:    18,
		},
	}
	for _, unit := range units {
		unit.Status = domain.UnitStatusActive
		unit.CreatedAt = now
		unit.UpdatedAt = now
		if _, err := s.units.Insert(ctx, unit); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(units)).Msg("inserted business units")
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.products.Count(ctx, ports.Filter{})
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("products already exist")
		return nil
	}

	now := time.Now().UTC()
	products := []*domain.Product{
		{
			Name:        domain.BilingualText{ID: "Beras Organik Sale", EN: "Sale Organic Rice"},
			Category:    "Pertanian",
			Price:       "Rp 15.000/kg",
			Description: &domain.BilingualText{ID: "Beras organik berkualitas tinggi dari sawah Desa Sale", EN: "High-quality organic rice from Sale Village rice fields"},
			StockStatus: domain.StockAvailable,
		},
		{
			Name:        domain.BilingualText{ID: "Madu Hutan Lokal", EN: "Local Forest Honey"},
			Category:    "Pertanian",
			Price:       "Rp 85.000/botol",
			Description: &domain.BilingualText{ID: "Madu murni dari hutan sekitar desa", EN: "Pure honey from forests around the village"},
			StockStatus: domain.StockAvailable,
		},
		{
			Name:        domain.BilingualText{ID: "Keripik Singkong", EN: "Cassava Chips"},
			Category:    "UMKM",
			Price:       "Rp 20.000/pack",
			Description: &domain.BilingualText{ID: "Keripik singkong renyah dengan berbagai rasa", EN: "Crispy cassava chips with various flavors"},
			StockStatus: domain.StockAvailable,
		},
		{
			Name:        domain.BilingualText{ID: "Tas Anyaman Bambu", EN: "Bamboo Woven Bag"},
			Category:    "Kerajinan",
			Price:       "Rp 75.000",
			Description: &domain.BilingualText{ID: "Tas ramah lingkungan dari anyaman bambu", EN: "Eco-friendly bag made from woven bamboo"},
			StockStatus: domain.StockAvailable,
		},
		{
			Name:        domain.BilingualText{ID: "Kopi Robusta Sale", EN: "Sale Robusta Coffee"},
			Category:    "Pertanian",
			Price:       "Rp 45.000/pack",
			Description: &domain.BilingualText{ID: "Kopi robusta pilihan dari kebun kopi Desa Sale", EN: "Selected robusta coffee from Sale Village coffee plantations"},
			StockStatus: domain.StockAvailable,
		},
		{
			Name:        domain.BilingualText{ID: "Batik Tulis Sale", EN: "Sale Hand-drawn Batik"},
			Category:    "Kerajinan",
			Price:       "Rp 350.000",
			Description: &domain.BilingualText{ID: "Batik tulis motif khas Desa Sale", EN: "Hand-drawn batik with Sale Village unique patterns"},
			StockStatus: domain.StockPreorder,
		},
	}
	for _, product := range products {
		product.CreatedAt = now
		product.UpdatedAt = now
		if _, err := s.products.Insert(ctx, product); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(products)).Msg("inserted products")
	return nil
}

func (s *Seeder) seedReports(ctx context.Context) error {
	count, err := s.reports.Count(ctx, ports.Filter{})
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("financial reports already exist")
		return nil
	}

	now := time.Now().UTC()
	reports := []*domain.FinancialReport{
		{Period: "Q1 2025", Quarter: 1, Year: 2025, Income: 625000000, Expense: 380000000, Profit: 245000000},
		{Period: "Q4 2024", Quarter: 4, Year: 2024, Income: 580000000, Expense: 350000000, Profit: 230000000},
		{Period: "Q3 2024", Quarter: 3, Year: 2024, Income: 550000000, Expense: 340000000, Profit: 210000000},
	}
	for _, report := range reports {
		report.AuditStatus = domain.AuditAudited
		report.CreatedAt = now
		report.UpdatedAt = now
		if _, err := s.reports.Insert(ctx, report); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(reports)).Msg("inserted financial reports")
	return nil
}

func (s *Seeder) seedSHU(ctx context.Context) error {
	count, err := s.shu.Count(ctx, ports.Filter{})
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("shu distributions already exist")
		return nil
	}

	now := time.Now().UTC()
	records := []*domain.SHUDistribution{
		{
			Year:             2024,
			TotalAmount:      850000000,
			MemberCount:      320,
			PerMember:        2656250,
			DistributionDate: time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Year:             2023,
			TotalAmount:      720000000,
			MemberCount:      280,
			PerMember:        2571429,
			DistributionDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, record := range records {
		record.CreatedAt = now
		record.UpdatedAt = now
		if _, err := s.shu.Insert(ctx, record); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(records)).Msg("inserted shu distributions")
	return nil
}

func (s *Seeder) seedNews(ctx context.Context, authorID string) error {
	count, err := s.news.Count(ctx, ports.Filter{})
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.Info().Int64("count", count).Msg("news articles already exist")
		return nil
	}

	now := time.Now().UTC()
	articles := []*domain.News{
		{
			Title:    domain.BilingualText{ID: "Pelatihan Kewirausahaan untuk UMKM Desa Sale", EN: "Entrepreneurship Training for Sale Village SMEs"},
			Excerpt:  domain.BilingualText{ID: "BUMDes Desa Sale mengadakan pelatihan kewirausahaan untuk 50 pelaku UMKM lokal.", EN: "BUMDes Desa Sale holds entrepreneurship training for 50 local SME actors."},
			Content:  domain.BilingualText{ID: "Pada tanggal 15 Mei 2025, BUMDes Desa Sale berhasil menyelenggarakan program pelatihan kewirausahaan yang diikuti oleh 50 pelaku UMKM lokal. Pelatihan ini bertujuan untuk meningkatkan kapasitas wirausaha di Desa Sale.", EN: "On May 15, 2025, BUMDes Desa Sale successfully held an entrepreneurship training program attended by 50 local SME actors. This training aims to increase entrepreneurial capacity in Sale Village."},
			Category: "Pelatihan",
		},
		{
			Title:    domain.BilingualText{ID: "Launching Produk Beras Organik Premium", EN: "Premium Organic Rice Product Launch"},
			Excerpt:  domain.BilingualText{ID: "Produk unggulan baru dari unit usaha pertanian BUMDes Desa Sale.", EN: "New featured product from BUMDes Desa Sale agricultural business unit."},
			Content:  domain.BilingualText{ID: "BUMDes Desa Sale meluncurkan produk beras organik premium yang diproduksi langsung oleh petani lokal. Produk ini telah mendapat sertifikasi organik dan siap dipasarkan ke berbagai daerah.", EN: "BUMDes Desa Sale launches premium organic rice products produced directly by local farmers. This product has received organic certification and is ready to be marketed to various regions."},
			Category: "Produk",
		},
		{
			Title:    domain.BilingualText{ID: "BUMDes Sale Raih Penghargaan Transparansi Terbaik", EN: "BUMDes Sale Receives Best Transparency Award"},
			Excerpt:  domain.BilingualText{ID: "Penghargaan dari Kementerian Desa untuk kategori transparansi dan akuntabilitas.", EN: "Award from the Ministry of Villages for transparency and accountability category."},
			Content:  domain.BilingualText{ID: "BUMDes Desa Sale berhasil meraih penghargaan Transparansi Terbaik dari Kementerian Desa, PDTT. Penghargaan ini diberikan atas komitmen BUMDes dalam menerapkan prinsip transparansi dan akuntabilitas dalam pengelolaan keuangan.", EN: "BUMDes Desa Sale successfully won the Best Transparency Award from the Ministry of Villages, PDTT. This award was given for BUMDes' commitment to implementing principles of transparency and accountability in financial management."},
			Category: "Penghargaan",
		},
	}
	for _, article := range articles {
		article.Author = authorID
		article.IsPublished = true
		article.PublishedAt = now
		article.CreatedAt = now
		article.UpdatedAt = now
		if _, err := s.news.Insert(ctx, article); err != nil {
			return err
		}
	}
	s.log.Info().Int("count", len(articles)).Msg("inserted news articles")
	return nil
}
