package service

import (
	"fmt"
	"io"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
	"github.com/google/uuid"
)

// AdminService groups catalog mutations. Every call requires the session to be in admin mode.
type AdminService interface {
	AddCategory(sessionID, name, icon, image string) (model.Category, error)
	AddSubCategory(sessionID, categoryID, name string) (model.SubCategory, error)
	AddSubSubCategory(sessionID, categoryID, subCategoryID, name string) (model.SubSubCategory, error)
	RemoveCategory(sessionID, categoryID string) (bool, error)
	RemoveSubCategory(sessionID, categoryID, subCategoryID string) (bool, error)
	RemoveSubSubCategory(sessionID, categoryID, subCategoryID, subSubCategoryID string) (bool, error)

	UpsertProduct(sessionID string, product model.Product) (model.Product, bool, error)
	RemoveProduct(sessionID, productID string) (bool, error)

	AddBanner(sessionID, imageURL string) ([]string, error)
	ReplaceBanners(sessionID string, imageURLs []string) ([]string, error)
	RemoveBanner(sessionID string, index int) (bool, error)

	RequestConfirmation(sessionID string, action model.PendingAction) (model.PendingAction, error)
	PendingActions(sessionID string) ([]model.PendingAction, error)
	Confirm(sessionID, actionID string) error
	Cancel(sessionID, actionID string) (bool, error)

	Notifications(sessionID string) ([]model.Notification, error)
	Integrity(sessionID string) ([]model.IntegrityWarning, error)
	ExportProducts(sessionID string, w io.Writer) error
	SaveSnapshot(sessionID string) error
}

func (s *Storefront) adminSession(sessionID string) (*session, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.adminMode {
		logger.Warn("Admin operation rejected", logger.Fields{
			"session_id": sessionID,
		})
		return nil, model.ErrAdminRequired
	}
	return sess, nil
}

// report queues the outcome for the session and forwards it to the notifier
func (s *Storefront) report(sess *session, success string, err error) {
	n := model.Success(success)
	if err != nil {
		n = model.Failure(err)
	}
	sess.notifications = append(sess.notifications, n)
	s.notifier.Notify(sess.id, n)
}

// ---- taxonomy ----

func (s *Storefront) AddCategory(sessionID, name, icon, image string) (model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return model.Category{}, err
	}
	cat, err := s.taxonomy.AddCategory(name, icon, image)
	s.report(sess, "Main category added!", err)
	return cat, err
}

func (s *Storefront) AddSubCategory(sessionID, categoryID, name string) (model.SubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return model.SubCategory{}, err
	}
	sub, err := s.taxonomy.AddSubCategory(categoryID, name)
	s.report(sess, "Sub-category added!", err)
	return sub, err
}

func (s *Storefront) AddSubSubCategory(sessionID, categoryID, subCategoryID, name string) (model.SubSubCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return model.SubSubCategory{}, err
	}
	ssc, err := s.taxonomy.AddSubSubCategory(categoryID, subCategoryID, name)
	s.report(sess, "Sub-sub-category added!", err)
	return ssc, err
}

func (s *Storefront) RemoveCategory(sessionID, categoryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return false, err
	}
	return s.removeCategory(sess, categoryID), nil
}

func (s *Storefront) removeCategory(sess *session, categoryID string) bool {
	removed := s.taxonomy.RemoveCategory(categoryID)
	s.report(sess, "Main category deleted!", nil)
	return removed
}

func (s *Storefront) RemoveSubCategory(sessionID, categoryID, subCategoryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return false, err
	}
	return s.removeSubCategory(sess, categoryID, subCategoryID), nil
}

func (s *Storefront) removeSubCategory(sess *session, categoryID, subCategoryID string) bool {
	removed := s.taxonomy.RemoveSubCategory(categoryID, subCategoryID)
	s.report(sess, "Sub-category deleted!", nil)
	return removed
}

func (s *Storefront) RemoveSubSubCategory(sessionID, categoryID, subCategoryID, subSubCategoryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return false, err
	}
	return s.removeSubSubCategory(sess, categoryID, subCategoryID, subSubCategoryID), nil
}

func (s *Storefront) removeSubSubCategory(sess *session, categoryID, subCategoryID, subSubCategoryID string) bool {
	removed := s.taxonomy.RemoveSubSubCategory(categoryID, subCategoryID, subSubCategoryID)
	s.report(sess, "Sub-sub-category deleted!", nil)
	return removed
}

// ---- products ----

func (s *Storefront) UpsertProduct(sessionID string, product model.Product) (model.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return model.Product{}, false, err
	}
	saved, created, err := s.products.Upsert(product)
	msg := "Product updated!"
	if created {
		msg = "Product added!"
	}
	s.report(sess, msg, err)
	return saved, created, err
}

func (s *Storefront) RemoveProduct(sessionID, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return false, err
	}
	return s.removeProduct(sess, productID), nil
}

func (s *Storefront) removeProduct(sess *session, productID string) bool {
	removed := s.products.Remove(productID)
	s.report(sess, "Product deleted!", nil)
	return removed
}

// ---- banners ----

func (s *Storefront) AddBanner(sessionID, imageURL string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return nil, err
	}
	err = s.banners.Add(imageURL)
	s.report(sess, "Home page banners updated!", err)
	return s.banners.List(), err
}

func (s *Storefront) ReplaceBanners(sessionID string, imageURLs []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return nil, err
	}
	err = s.banners.Replace(imageURLs)
	s.report(sess, "Home page banners updated!", err)
	return s.banners.List(), err
}

func (s *Storefront) RemoveBanner(sessionID string, index int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return false, err
	}
	removed := s.banners.Remove(index)
	s.report(sess, "Home page banners updated!", nil)
	return removed, nil
}

// ---- confirmations ----

// RequestConfirmation parks a destructive action until Confirm or Cancel.
// Only Kind and its target (Path or ProductID) are read from action.
func (s *Storefront) RequestConfirmation(sessionID string, action model.PendingAction) (model.PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return model.PendingAction{}, err
	}

	pending := model.PendingAction{
		ID:   uuid.New().String(),
		Kind: action.Kind,
	}
	switch action.Kind {
	case model.ActionRemoveCategory:
		if action.Path.CategoryID == "" {
			return model.PendingAction{}, model.NewValidationError("path.categoryId", "is required")
		}
		cat, err := s.taxonomy.FindCategory(action.Path.CategoryID)
		if err != nil {
			return model.PendingAction{}, err
		}
		pending.Path = model.CategoryPath{CategoryID: cat.ID}
		pending.Title = "Delete Category"
		pending.Message = fmt.Sprintf("Delete %q with all of its sub-categories? This cannot be undone.", cat.Name)
	case model.ActionRemoveSubCategory:
		if action.Path.CategoryID == "" || action.Path.SubCategoryID == "" {
			return model.PendingAction{}, model.NewValidationError("path.subCategoryId", "is required")
		}
		sub, err := s.taxonomy.FindSubCategory(action.Path.CategoryID, action.Path.SubCategoryID)
		if err != nil {
			return model.PendingAction{}, err
		}
		pending.Path = model.CategoryPath{CategoryID: action.Path.CategoryID, SubCategoryID: sub.ID}
		pending.Title = "Delete Sub-category"
		pending.Message = fmt.Sprintf("Delete %q with all of its sub-sub-categories? This cannot be undone.", sub.Name)
	case model.ActionRemoveSubSubCategory:
		if action.Path.Depth() != 3 || !action.Path.WellFormed() {
			return model.PendingAction{}, model.NewValidationError("path.subSubCategoryId", "is required")
		}
		if !s.taxonomy.Exists(action.Path) {
			return model.PendingAction{}, &model.NotFoundError{Kind: "sub-sub-category", ID: action.Path.String()}
		}
		pending.Path = action.Path
		pending.Title = "Delete Sub-sub-category"
		pending.Message = fmt.Sprintf("Delete %q? This cannot be undone.", action.Path.SubSubCategoryID)
	case model.ActionRemoveProduct:
		product, err := s.products.FindByID(action.ProductID)
		if err != nil {
			return model.PendingAction{}, err
		}
		pending.ProductID = product.ID
		pending.Title = "Delete Product"
		pending.Message = fmt.Sprintf("Delete %q? This cannot be undone.", product.Name)
	default:
		return model.PendingAction{}, model.NewValidationError("kind", fmt.Sprintf("unsupported action %q", action.Kind))
	}

	sess.pending = append(sess.pending, pending)
	logger.Info("Confirmation requested", logger.Fields{
		"session_id": sessionID,
		"action_id":  pending.ID,
		"kind":       pending.Kind,
	})
	return pending, nil
}

func (s *Storefront) PendingActions(sessionID string) ([]model.PendingAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]model.PendingAction, len(sess.pending))
	copy(out, sess.pending)
	return out, nil
}

// Confirm executes and forgets a pending action
func (s *Storefront) Confirm(sessionID, actionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return err
	}
	action, ok := sess.takePending(actionID)
	if !ok {
		return &model.NotFoundError{Kind: "pending action", ID: actionID}
	}

	switch action.Kind {
	case model.ActionRemoveCategory:
		s.removeCategory(sess, action.Path.CategoryID)
	case model.ActionRemoveSubCategory:
		s.removeSubCategory(sess, action.Path.CategoryID, action.Path.SubCategoryID)
	case model.ActionRemoveSubSubCategory:
		s.removeSubSubCategory(sess, action.Path.CategoryID, action.Path.SubCategoryID, action.Path.SubSubCategoryID)
	case model.ActionRemoveProduct:
		s.removeProduct(sess, action.ProductID)
	}

	logger.Info("Confirmation executed", logger.Fields{
		"session_id": sessionID,
		"action_id":  actionID,
		"kind":       action.Kind,
	})
	return nil
}

func (s *Storefront) Cancel(sessionID, actionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return false, err
	}
	_, ok := sess.takePending(actionID)
	return ok, nil
}

// ---- reporting ----

// Notifications drains the session's queued notifications
func (s *Storefront) Notifications(sessionID string) ([]model.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	out := sess.notifications
	sess.notifications = nil
	if out == nil {
		out = []model.Notification{}
	}
	return out, nil
}

func (s *Storefront) Integrity(sessionID string) ([]model.IntegrityWarning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.adminSession(sessionID); err != nil {
		return nil, err
	}
	return CheckIntegrity(s.taxonomy.Tree(), s.products.GetAll()), nil
}

func (s *Storefront) ExportProducts(sessionID string, w io.Writer) error {
	s.mu.Lock()
	products := s.products.GetAll()
	_, err := s.adminSession(sessionID)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	// the workbook is written outside the lock; products is already a copy
	return WriteProductsXLSX(w, products)
}

// Snapshot returns a deep copy of the shared catalog
func (s *Storefront) Snapshot() model.CatalogSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Storefront) snapshot() model.CatalogSnapshot {
	return model.CatalogSnapshot{
		Categories: s.taxonomy.Tree(),
		Products:   s.products.GetAll(),
		Banners:    s.banners.List(),
	}
}

func (s *Storefront) SaveSnapshot(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.adminSession(sessionID)
	if err != nil {
		return err
	}
	if s.snapshots == nil {
		return model.ErrSnapshotUnavailable
	}
	err = s.snapshots.Save(s.snapshot())
	s.report(sess, "Catalog saved!", err)
	return err
}
