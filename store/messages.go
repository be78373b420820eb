package store

import "errors"

// Pesan user-facing, sama persis dengan halaman order di browser bundle.
const (
	MsgSelectTable      = "اختر طاولة قبل إرسال الطلب"
	MsgAddItem          = "أضف عنصرا واحدا على الأقل"
	MsgOrderCreated     = "تم إرسال الطلب بنجاح"
	MsgCreateRejected   = "تعذر إنشاء الطلب"
	MsgSubmitFailed     = "فشل إرسال الطلب"
	MsgOrderDelivered   = "تم تحديث الطلب وتفريغ الطاولة"
	MsgUpdateRejected   = "تعذر تحديث حالة الطلب"
	MsgUpdateFailed     = "فشل تحديث حالة الطلب"
	MsgLoadFailed       = "تعذر تحميل بيانات الطلبات"
	MsgMenuFetchFailed  = "فشل جلب عناصر القائمة"
	MsgTableFetchFailed = "فشل جلب الطاولات"
)

// Validation sentinels: dicek sebelum ada call ke gateway, bukan fault sistem.
var (
	ErrNoTableSelected = errors.New("no table selected")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrSubmitInFlight  = errors.New("submission already in flight")
	ErrUpdateInFlight  = errors.New("order update already in flight")
	ErrNotDeliverable  = errors.New("order is already served or paid")
)
