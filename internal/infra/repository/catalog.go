package repository

import (
	"context"
	"encoding/json"
	"errors"

	"slotbook/internal/domain/catalog"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CatalogRepository reads the service and staff catalog. The scheduling core
// never writes these tables.
type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(db db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const findServiceSQL = `
SELECT s.id, s.tenant_id, s.vendor_id, s.name, s.duration_min, s.price_cents,
       s.currency, s.is_active,
       COALESCE(array_agg(ss.staff_id) FILTER (WHERE ss.staff_id IS NOT NULL), '{}') AS staff_ids
FROM services s
LEFT JOIN service_staff ss ON ss.service_id = s.id
WHERE s.id = $1 AND s.tenant_id = $2
GROUP BY s.id`

func (r *CatalogRepository) FindService(ctx context.Context, tenantID string, serviceID uuid.UUID) (*catalog.Service, error) {
	var svc catalog.Service
	err := r.db.QueryRow(ctx, findServiceSQL, serviceID, tenantID).Scan(
		&svc.ID, &svc.TenantID, &svc.VendorID, &svc.Name, &svc.DurationMin,
		&svc.PriceCents, &svc.Currency, &svc.IsActive, &svc.StaffIDs,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &svc, nil
}

const findStaffSQL = `
SELECT id, tenant_id, vendor_id, name, is_active, weekly_schedule, blocked_dates
FROM staff
WHERE id = $1 AND tenant_id = $2`

func (r *CatalogRepository) FindStaff(ctx context.Context, tenantID string, staffID uuid.UUID) (*catalog.Staff, error) {
	var (
		st         catalog.Staff
		weeklyRaw  []byte
		blockedRaw []byte
	)
	err := r.db.QueryRow(ctx, findStaffSQL, staffID, tenantID).Scan(
		&st.ID, &st.TenantID, &st.VendorID, &st.Name, &st.IsActive, &weeklyRaw, &blockedRaw,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("staff not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff", err)
	}

	if err := json.Unmarshal(weeklyRaw, &st.Weekly); err != nil {
		return nil, infra.WrapRepoErr("corrupt weekly schedule", err)
	}
	if err := json.Unmarshal(blockedRaw, &st.BlockedDates); err != nil {
		return nil, infra.WrapRepoErr("corrupt blocked dates", err)
	}
	return &st, nil
}

const findStaffByIDsSQL = `
SELECT id, tenant_id, vendor_id, name, is_active, weekly_schedule, blocked_dates
FROM staff
WHERE tenant_id = $1 AND id = ANY($2) AND is_active`

// FindStaffByIDs loads the active staff among ids, used for the
// all-qualified-staff slot aggregation.
func (r *CatalogRepository) FindStaffByIDs(ctx context.Context, tenantID string, ids []uuid.UUID) ([]*catalog.Staff, error) {
	rows, err := r.db.Query(ctx, findStaffByIDsSQL, tenantID, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff", err)
	}
	defer rows.Close()

	var result []*catalog.Staff
	for rows.Next() {
		var (
			st         catalog.Staff
			weeklyRaw  []byte
			blockedRaw []byte
		)
		if err := rows.Scan(&st.ID, &st.TenantID, &st.VendorID, &st.Name, &st.IsActive, &weeklyRaw, &blockedRaw); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff row", err)
		}
		if err := json.Unmarshal(weeklyRaw, &st.Weekly); err != nil {
			return nil, infra.WrapRepoErr("corrupt weekly schedule", err)
		}
		if err := json.Unmarshal(blockedRaw, &st.BlockedDates); err != nil {
			return nil, infra.WrapRepoErr("corrupt blocked dates", err)
		}
		result = append(result, &st)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff rows", err)
	}
	return result, nil
}
