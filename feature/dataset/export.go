package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"commerce-linker/core/metrics"
	"commerce-linker/core/models"
	"commerce-linker/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	AccountsFile = "customer_accounts_dataset.csv"
	SessionsFile = "customer_website_traffic_data.csv"

	exportPrefix = "exports"
)

var accountHeader = []string{
	"customer_id", "account_created_date", "account_status",
	"first_name", "last_name", "email_address", "phone_number", "date_of_birth", "gender",
	"country", "city", "postal_code", "address_line_1", "timezone",
	"total_orders", "total_lifetime_spend", "average_order_value",
	"first_purchase_date", "last_purchase_date", "days_since_last_purchase",
	"customer_segment", "loyalty_tier", "loyalty_points",
	"preferred_categories", "email_subscribed", "sms_subscribed", "marketing_opt_in", "preferred_communication",
	"login_frequency_days", "cart_save_count", "wishlist_items", "review_count", "referral_count",
	"payment_methods_count", "failed_payment_attempts", "return_rate_percent", "dispute_count",
	"email_open_rate_percent", "email_click_rate_percent", "app_usage_days", "social_media_follower",
	"account_age_days", "is_recent_customer", "is_high_value", "is_frequent_buyer", "customer_value_score",
}

var sessionHeader = []string{
	"customer_id", "customer_name", "customer_email", "customer_age", "customer_country", "customer_city", "registration_date",
	"session_id", "session_date", "session_start_time",
	"page_views", "session_duration_minutes", "bounce_rate", "pages_per_session", "entry_page_category", "exit_page_category",
	"device_type", "browser", "operating_system", "screen_resolution",
	"referrer_source", "campaign_source", "utm_medium",
	"converted", "revenue", "items_viewed", "cart_abandonment", "newsletter_signup", "is_guest_checkout",
	"time_on_site_seconds", "scroll_depth_percent", "click_through_rate",
	"ip_address", "timezone", "latitude", "longitude",
	"customer_lifetime_value", "customer_session_count", "is_returning_customer", "has_account", "days_since_registration",
}

func fmtInt(v int) string { return strconv.Itoa(v) }

func fmtBool(v bool) string { return strconv.FormatBool(v) }

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func fmtOptional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func accountRecord(a models.Account) []string {
	return []string{
		a.CustomerID, fmtDate(a.AccountCreatedDate), a.AccountStatus,
		a.FirstName, a.LastName, a.EmailAddress, a.PhoneNumber, fmtDate(a.DateOfBirth), a.Gender,
		string(a.Country), a.City, a.PostalCode, a.AddressLine1, a.Timezone,
		fmtInt(a.TotalOrders), fmtFloat(a.TotalLifetimeSpend), fmtFloat(a.AverageOrderValue),
		fmtDate(a.FirstPurchaseDate), fmtDate(a.LastPurchaseDate), fmtInt(a.DaysSinceLastPurchase),
		string(a.CustomerSegment), string(a.LoyaltyTier), fmtInt(a.LoyaltyPoints),
		a.PreferredCategories, fmtBool(a.EmailSubscribed), fmtBool(a.SMSSubscribed), fmtBool(a.MarketingOptIn), a.PreferredCommunication,
		fmtInt(a.LoginFrequencyDays), fmtInt(a.CartSaveCount), fmtInt(a.WishlistItems), fmtInt(a.ReviewCount), fmtInt(a.ReferralCount),
		fmtInt(a.PaymentMethodsCount), fmtInt(a.FailedPaymentAttempts), fmtFloat(a.ReturnRatePercent), fmtInt(a.DisputeCount),
		fmtFloat(a.EmailOpenRatePercent), fmtFloat(a.EmailClickRatePercent), fmtInt(a.AppUsageDays), fmtBool(a.SocialMediaFollower),
		fmtInt(a.AccountAgeDays), fmtBool(a.IsRecentCustomer), fmtBool(a.IsHighValue), fmtBool(a.IsFrequentBuyer), fmtFloat(a.CustomerValueScore),
	}
}

func sessionRecord(s models.Session) []string {
	return []string{
		s.CustomerID, s.CustomerName, s.CustomerEmail, fmtInt(s.CustomerAge), string(s.CustomerCountry), s.CustomerCity, fmtDate(s.RegistrationDate),
		s.SessionID, s.SessionDate.Format(time.DateTime), s.SessionStartTime,
		fmtInt(s.PageViews), fmtFloat(s.SessionDurationMinutes), fmtFloat(s.BounceRate), fmtFloat(s.PagesPerSession), s.EntryPageCategory, s.ExitPageCategory,
		s.DeviceType, s.Browser, s.OperatingSystem, s.ScreenResolution,
		s.ReferrerSource, fmtOptional(s.CampaignSource), fmtOptional(s.UTMMedium),
		fmtBool(s.Converted), fmtFloat(s.Revenue), fmtInt(s.ItemsViewed), fmtBool(s.CartAbandonment), fmtBool(s.NewsletterSignup), fmtBool(s.IsGuestCheckout),
		fmtFloat(s.TimeOnSiteSeconds), fmtFloat(s.ScrollDepthPercent), fmtFloat(s.ClickThroughRate),
		s.IPAddress, s.Timezone, fmtFloat(s.Latitude), fmtFloat(s.Longitude),
		fmtFloat(s.CustomerLifetimeValue), fmtInt(s.CustomerSessionCount), fmtBool(s.IsReturningCustomer), fmtBool(s.HasAccount), fmtInt(s.DaysSinceRegistration),
	}
}

func writeCSV[T any](w io.Writer, header []string, rows []T, record func(T) []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteAccountsCSV writes accounts with a header row.
func WriteAccountsCSV(w io.Writer, accounts []models.Account) error {
	return writeCSV(w, accountHeader, accounts, accountRecord)
}

// WriteSessionsCSV writes sessions with a header row.
func WriteSessionsCSV(w io.Writer, sessions []models.Session) error {
	return writeCSV(w, sessionHeader, sessions, sessionRecord)
}

type csvFile struct {
	name  string
	write func(io.Writer) error
}

func filesOf(ds *Dataset) []csvFile {
	return []csvFile{
		{AccountsFile, func(w io.Writer) error { return WriteAccountsCSV(w, ds.Accounts) }},
		{SessionsFile, func(w io.Writer) error { return WriteSessionsCSV(w, ds.Sessions) }},
	}
}

// ExportDir writes both CSV files of ds into dir and returns their paths.
func ExportDir(dir string, ds *Dataset) (paths []string, err error) {
	defer func() { metrics.RecordExport("local", err) }()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	files := filesOf(ds)
	paths = make([]string, len(files))
	var g errgroup.Group
	for i, f := range files {
		paths[i] = filepath.Join(dir, f.name)
		g.Go(func() error {
			out, err := os.Create(paths[i])
			if err != nil {
				return err
			}
			if err := f.write(out); err != nil {
				out.Close()
				return fmt.Errorf("failed to write %s: %w", f.name, err)
			}
			return out.Close()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// Exporter uploads dataset CSV files to the object store under
// exports/<dataset id>/.
type Exporter struct {
	client storage.Client
	bucket string
	region string
	logger *zap.Logger
}

// NewExporter creates a bucket exporter.
func NewExporter(client storage.Client, bucket, region string, logger *zap.Logger) *Exporter {
	return &Exporter{client: client, bucket: bucket, region: region, logger: logger}
}

// Bucket returns the target bucket name.
func (e *Exporter) Bucket() string {
	return e.bucket
}

// ObjectKey returns the key a dataset file is stored under.
func ObjectKey(datasetID, file string) string {
	return exportPrefix + "/" + datasetID + "/" + file
}

// Upload writes both CSV files of ds to the bucket and returns their keys.
func (e *Exporter) Upload(ctx context.Context, ds *Dataset) (keys []string, err error) {
	defer func() { metrics.RecordExport("bucket", err) }()

	if err := storage.EnsureBucket(ctx, e.client, e.bucket, e.region); err != nil {
		return nil, err
	}

	files := filesOf(ds)
	keys = make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		keys[i] = ObjectKey(ds.ID, f.name)
		g.Go(func() error {
			var buf bytes.Buffer
			if err := f.write(&buf); err != nil {
				return fmt.Errorf("failed to encode %s: %w", f.name, err)
			}
			_, err := e.client.PutObject(gctx, e.bucket, keys[i], bytes.NewReader(buf.Bytes()), int64(buf.Len()),
				minio.PutObjectOptions{ContentType: "text/csv"})
			if err != nil {
				return fmt.Errorf("failed to upload %s: %w", keys[i], err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	e.logger.Info("Dataset exported",
		zap.String("dataset_id", ds.ID),
		zap.String("bucket", e.bucket),
		zap.Strings("keys", keys))
	return keys, nil
}

// List returns the exported object keys of a dataset.
func (e *Exporter) List(ctx context.Context, datasetID string) ([]string, error) {
	return storage.ListKeys(ctx, e.client, e.bucket, exportPrefix+"/"+datasetID+"/")
}

// Open streams one exported file of a dataset.
func (e *Exporter) Open(ctx context.Context, datasetID, file string) (io.ReadCloser, error) {
	if file != AccountsFile && file != SessionsFile {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFile, file)
	}
	return e.client.GetObject(ctx, e.bucket, ObjectKey(datasetID, file), minio.GetObjectOptions{})
}
