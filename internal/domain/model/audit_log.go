package model

import "time"

// 管理者操作の種類。
type AuditAction string

const (
	//タイムセールの作成・更新・削除
	AuditActionUpsertFlashsale AuditAction = "UPSERT_FLASHSALE"
	AuditActionDeleteFlashsale AuditAction = "DELETE_FLASHSALE"

	//セール対象商品の追加・更新・削除
	AuditActionUpsertFlashsaleItem AuditAction = "UPSERT_FLASHSALE_ITEM"
	AuditActionDeleteFlashsaleItem AuditAction = "DELETE_FLASHSALE_ITEM"

	//書籍の作成・更新・削除
	AuditActionUpsertBook AuditAction = "UPSERT_BOOK"
	AuditActionDeleteBook AuditAction = "DELETE_BOOK"
)

// 何に対する操作か
type AuditResourceType string

const (
	AuditResourceBook          AuditResourceType = "book"
	AuditResourceFlashsale     AuditResourceType = "flashsale"
	AuditResourceFlashsaleItem AuditResourceType = "flashsale_item"
)

// 監査ログ（管理者操作ログ）。
// 「誰が」「何を」「どの対象に」「どう変えたか」を残す。
type AuditLog struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	//操作したユーザー（主に管理者）のID。
	ActorUserID int64 `gorm:"not null;index" json:"actor_user_id"`

	Action       AuditAction       `gorm:"type:varchar(50);not null;index" json:"action"`
	ResourceType AuditResourceType `gorm:"type:varchar(50);not null;index" json:"resource_type"`
	ResourceID   int64             `gorm:"not null;index" json:"resource_id"`

	//変更前後のスナップショット（JSON文字列）。
	BeforeJSON string `gorm:"type:text" json:"before_json"`
	AfterJSON  string `gorm:"type:text" json:"after_json"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
}
