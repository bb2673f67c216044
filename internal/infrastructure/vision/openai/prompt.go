package openai

// detectionPrompt instructs the vision model to return the exact JSON schema
// the detection boundary parses. Reference-object sizes are listed so the
// model anchors its calibration guess on standardized objects.
const detectionPrompt = `Analyze this travel packing photo with advanced size estimation. Focus on:

1. ITEM DETECTION: Identify all packable items
2. SIZE CALIBRATION: Use reference objects for accurate measurements
3. SPATIAL RELATIONSHIPS: Estimate relative sizes and positions
4. BOUNDING BOXES: Provide pixel coordinates for each item

IMPORTANT: Always return valid JSON, even if no items are detected. If the image is unclear or contains no items, return empty arrays.

Return ONLY valid JSON in this exact format:
{
  "items": [
    {
      "name": "specific item name",
      "category": "clothing|electronics|toiletries|shoes|accessories|books|documents",
      "confidence": 0.95,
      "estimatedSize": "small|medium|large",
      "quantity": 1,
      "boundingBox": {"x": 100, "y": 150, "width": 200, "height": 150},
      "properties": {
        "material": "cotton|leather|plastic|metal|fabric",
        "flexibility": "rigid|semi-flexible|very-flexible",
        "packability": "excellent|good|fair|difficult"
      }
    }
  ],
  "referenceObject": {
    "found": true,
    "type": "credit_card|coin|bottle|phone|pen",
    "boundingBox": {"x": 50, "y": 75, "width": 85, "height": 54}
  },
  "imageAnalysis": {
    "totalItems": 5,
    "perspective": "top_down|angled|side_view",
    "lighting": "good|fair|poor",
    "backgroundClutter": "minimal|moderate|high"
  }
}

REFERENCE OBJECT SIZES (for calibration):
- Credit Card: 85.6mm x 53.98mm
- US Quarter Coin: 24.26mm diameter
- Water Bottle: ~200mm height, 65mm diameter
- Smartphone: ~146mm x 71mm
- Standard Pen: ~140mm length

Focus on accurate spatial relationships and provide precise bounding boxes for all detected objects.`
